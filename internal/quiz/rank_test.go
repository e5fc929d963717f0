package quiz_test

import (
	"testing"
	"time"

	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/quiz"
)

func submitted(id, quizID, studentID string, score float64) model.QuizAttempt {
	now := time.Now()
	return model.QuizAttempt{ID: id, QuizID: quizID, StudentID: studentID, SubmittedAt: &now, Score: &score}
}

func TestRankingsStableDescending(t *testing.T) {
	attempts := []model.QuizAttempt{
		submitted("a1", "quiz-1", "s1", 10),
		submitted("a2", "quiz-1", "s2", 25),
		submitted("a3", "quiz-1", "s3", 25),
		{ID: "a4", QuizID: "quiz-1", StudentID: "s4"}, // in progress: excluded
		submitted("a5", "quiz-2", "s1", 99),           // other quiz: excluded
	}
	entries := quiz.Rankings(attempts, "quiz-1")
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// ties keep original relative order
	if entries[0].AttemptID != "a2" || entries[1].AttemptID != "a3" || entries[2].AttemptID != "a1" {
		t.Fatalf("order = %v %v %v", entries[0].AttemptID, entries[1].AttemptID, entries[2].AttemptID)
	}

	rank, total, ok := quiz.Rank(entries, "a1")
	if !ok || rank != 3 || total != 3 {
		t.Fatalf("a1: rank=%d total=%d ok=%v, want 3/3", rank, total, ok)
	}
	rank, _, _ = quiz.Rank(entries, "a2")
	if rank != 1 {
		t.Fatalf("a2: rank=%d, want 1", rank)
	}
	rank, _, _ = quiz.Rank(entries, "a3")
	if rank != 2 {
		t.Fatalf("a3: rank=%d, want 2", rank)
	}
}

func TestRankUnknownAttempt(t *testing.T) {
	entries := quiz.Rankings([]model.QuizAttempt{submitted("a1", "quiz-1", "s1", 5)}, "quiz-1")
	_, total, ok := quiz.Rank(entries, "missing")
	if ok || total != 1 {
		t.Fatalf("ok=%v total=%d", ok, total)
	}
}

func TestBestPicksMaxSubmittedScore(t *testing.T) {
	attempts := []model.QuizAttempt{
		submitted("a1", "quiz-1", "s1", 10),
		submitted("a2", "quiz-1", "s1", 30),
		submitted("a3", "quiz-1", "s1", 20),
		{ID: "a4", QuizID: "quiz-1", StudentID: "s1"}, // in progress
	}
	best, ok := quiz.Best(attempts, "quiz-1", "s1")
	if !ok || best.ID != "a2" {
		t.Fatalf("best = %v ok=%v, want a2", best.ID, ok)
	}

	if _, ok := quiz.Best(attempts, "quiz-1", "s2"); ok {
		t.Fatalf("no submitted attempts: want ok=false")
	}
}
