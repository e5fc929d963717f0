package school

import (
	"context"
	"time"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/quiz"
)

// StartAttempt opens a new in-progress attempt. Multiple attempts per
// (quiz, student) are allowed; display picks the best submitted one.
func (s *Service) StartAttempt(ctx context.Context, quizID, studentID, language string) (model.QuizAttempt, error) {
	if _, ok := s.Quizzes.Get(ctx, quizID); !ok {
		return model.QuizAttempt{}, ErrNotFound
	}
	a := model.QuizAttempt{
		ID:               newID(),
		QuizID:           quizID,
		StudentID:        studentID,
		Answers:          map[string]any{},
		SelectedLanguage: language,
		StartedAt:        time.Now().UTC(),
	}
	if err := s.Attempts.Add(ctx, a); err != nil {
		return model.QuizAttempt{}, err
	}
	return a, nil
}

// AttemptProgress carries the navigation state saved while answering.
type AttemptProgress struct {
	Answers            map[string]any `json:"answers,omitempty"`
	VisitedQuestions   []string       `json:"visited_questions,omitempty"`
	AttemptedQuestions []string       `json:"attempted_questions,omitempty"`
	MarkedForReview    []string       `json:"marked_for_review,omitempty"`
}

// SaveProgress merges progress into an in-progress attempt. Submitted
// attempts are terminal; their answers are left untouched.
func (s *Service) SaveProgress(ctx context.Context, attemptID string, p AttemptProgress) (model.QuizAttempt, bool, error) {
	return s.Attempts.Update(ctx, attemptID, func(a *model.QuizAttempt) {
		if a.Submitted() {
			return
		}
		if a.Answers == nil {
			a.Answers = map[string]any{}
		}
		for k, v := range p.Answers {
			a.Answers[k] = v
		}
		if p.VisitedQuestions != nil {
			a.VisitedQuestions = p.VisitedQuestions
		}
		if p.AttemptedQuestions != nil {
			a.AttemptedQuestions = p.AttemptedQuestions
		}
		if p.MarkedForReview != nil {
			a.MarkedForReview = p.MarkedForReview
		}
	})
}

// SubmitAttempt grades the attempt and stamps SubmittedAt exactly once.
// An already-submitted attempt is returned unchanged; the stored score is
// never recomputed.
func (s *Service) SubmitAttempt(ctx context.Context, attemptID string) (model.QuizAttempt, error) {
	a, ok := s.Attempts.Get(ctx, attemptID)
	if !ok {
		return model.QuizAttempt{}, ErrNotFound
	}
	if a.Submitted() {
		return a, nil
	}
	qz, ok := s.Quizzes.Get(ctx, a.QuizID)
	if !ok {
		return model.QuizAttempt{}, ErrNotFound
	}
	score := quiz.Score(qz, a)
	now := time.Now().UTC()
	updated, _, err := s.Attempts.Update(ctx, attemptID, func(at *model.QuizAttempt) {
		if at.Submitted() {
			return
		}
		at.SubmittedAt = &now
		at.Score = &score
	})
	if err != nil {
		return model.QuizAttempt{}, err
	}
	s.logEvent(ctx, audit.TypeAttemptSubmitted, attemptID, map[string]any{
		"quiz_id": a.QuizID, "student_id": a.StudentID, "score": score,
	})
	return updated, nil
}

// QuizResult is what the dashboard shows after submission.
type QuizResult struct {
	Attempt    model.QuizAttempt `json:"attempt"`
	Rank       int               `json:"rank"`
	Total      int               `json:"total"`
	TotalMarks float64           `json:"total_marks"`
}

// Result computes the student's best submitted attempt for the quiz and
// its rank among all submitted attempts.
func (s *Service) Result(ctx context.Context, quizID, studentID string) (QuizResult, error) {
	qz, ok := s.Quizzes.Get(ctx, quizID)
	if !ok {
		return QuizResult{}, ErrNotFound
	}
	attempts := s.Attempts.All(ctx)
	best, ok := quiz.Best(attempts, quizID, studentID)
	if !ok {
		return QuizResult{}, ErrNotFound
	}
	entries := quiz.Rankings(attempts, quizID)
	rank, total, _ := quiz.Rank(entries, best.ID)
	return QuizResult{Attempt: best, Rank: rank, Total: total, TotalMarks: qz.TotalMarks()}, nil
}

// Leaderboard returns the ordered submitted-attempt summaries for a quiz.
func (s *Service) Leaderboard(ctx context.Context, quizID string) []quiz.RankEntry {
	return quiz.Rankings(s.Attempts.All(ctx), quizID)
}

func (s *Service) AttemptsByStudent(ctx context.Context, studentID string) []model.QuizAttempt {
	return s.Attempts.Filter(ctx, func(a model.QuizAttempt) bool { return a.StudentID == studentID })
}
