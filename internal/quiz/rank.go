package quiz

import (
	"sort"

	"github.com/classdesk/classdesk/internal/model"
)

// RankEntry is the attempt summary ranking is computed from.
type RankEntry struct {
	AttemptID string  `json:"attempt_id"`
	StudentID string  `json:"student_id"`
	Score     float64 `json:"score"`
}

// Rankings filters to submitted attempts for the quiz and orders them
// descending by score. The sort is stable: equal scores keep their
// original relative order, which is what breaks ties.
func Rankings(attempts []model.QuizAttempt, quizID string) []RankEntry {
	var entries []RankEntry
	for _, a := range attempts {
		if a.QuizID != quizID || !a.Submitted() || a.Score == nil {
			continue
		}
		entries = append(entries, RankEntry{AttemptID: a.ID, StudentID: a.StudentID, Score: *a.Score})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	return entries
}

// Rank returns the 1-based position of attemptID among entries plus the
// participant count. ok is false when the attempt is not in the list.
func Rank(entries []RankEntry, attemptID string) (rank, total int, ok bool) {
	for i, e := range entries {
		if e.AttemptID == attemptID {
			return i + 1, len(entries), true
		}
	}
	return 0, len(entries), false
}

// Best picks the student's submitted attempt with the maximum score for
// the quiz. With tied scores the earliest is kept.
func Best(attempts []model.QuizAttempt, quizID, studentID string) (model.QuizAttempt, bool) {
	var best model.QuizAttempt
	found := false
	for _, a := range attempts {
		if a.QuizID != quizID || a.StudentID != studentID || !a.Submitted() || a.Score == nil {
			continue
		}
		if !found || *a.Score > *best.Score {
			best = a
			found = true
		}
	}
	return best, found
}
