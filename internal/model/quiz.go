package model

import "time"

type QuestionType string

const (
	QuestionSingleCorrect QuestionType = "single-correct"
	QuestionMultiCorrect  QuestionType = "multi-correct"
	QuestionNumerical     QuestionType = "numerical"
	QuestionSubjective    QuestionType = "subjective"
)

// QuestionContent is the per-language rendering of a question.
type QuestionContent struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options,omitempty"`
}

// Question's CorrectAnswer shape depends on Type: a string for
// single-correct, a string array for multi-correct, a number for numerical,
// absent for subjective. It is kept as decoded JSON so a malformed shape
// degrades to "incorrect" at grading time instead of failing to load.
type Question struct {
	ID              string                     `json:"id"`
	Type            QuestionType               `json:"type"`
	Content         map[string]QuestionContent `json:"content"`
	CorrectAnswer   any                        `json:"correct_answer,omitempty"`
	Marks           float64                    `json:"marks"`
	PenaltyMarks    float64                    `json:"penalty_marks"`
	DifficultyLevel string                     `json:"difficulty_level,omitempty"`
	Subject         string                     `json:"subject,omitempty"`
	Topic           string                     `json:"topic,omitempty"`
	Tags            []string                   `json:"tags,omitempty"`
}

type Quiz struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	CourseID           string     `json:"course_id"`
	Duration           int        `json:"duration"` // minutes
	Questions          []Question `json:"questions"`
	SupportedLanguages []string   `json:"supported_languages,omitempty"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (q Quiz) EntityID() string { return q.ID }

// TotalMarks is the maximum achievable score.
func (q Quiz) TotalMarks() float64 {
	var sum float64
	for _, qu := range q.Questions {
		sum += qu.Marks
	}
	return sum
}

// StripAnswers returns a copy safe to serve to students.
func (q Quiz) StripAnswers() Quiz {
	qs := make([]Question, len(q.Questions))
	copy(qs, q.Questions)
	for i := range qs {
		qs[i].CorrectAnswer = nil
	}
	q.Questions = qs
	return q
}

// QuizAttempt is one student's run through a quiz. SubmittedAt present
// marks the attempt terminal; Score is set at submission.
type QuizAttempt struct {
	ID                 string         `json:"id"`
	QuizID             string         `json:"quiz_id"`
	StudentID          string         `json:"student_id"`
	Answers            map[string]any `json:"answers"`
	VisitedQuestions   []string       `json:"visited_questions,omitempty"`
	AttemptedQuestions []string       `json:"attempted_questions,omitempty"`
	MarkedForReview    []string       `json:"marked_for_review,omitempty"`
	SelectedLanguage   string         `json:"selected_language,omitempty"`
	StartedAt          time.Time      `json:"started_at"`
	SubmittedAt        *time.Time     `json:"submitted_at,omitempty"`
	Score              *float64       `json:"score,omitempty"`
}

func (a QuizAttempt) EntityID() string { return a.ID }

func (a QuizAttempt) Submitted() bool { return a.SubmittedAt != nil }

func (a QuizAttempt) Attempted(questionID string) bool {
	for _, id := range a.AttemptedQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}
