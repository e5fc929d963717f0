package quiz

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/classdesk/classdesk/internal/model"
)

// Correct reports whether the submitted answer matches the question's
// canonical answer. A malformed answer or answer key on either side never
// panics or errors; it just reads as incorrect, so one bad question cannot
// block scoring the rest of an attempt. Subjective questions are never
// auto-correct here.
func Correct(q model.Question, submitted any) bool {
	switch q.Type {
	case model.QuestionSingleCorrect:
		want, ok1 := asString(q.CorrectAnswer)
		got, ok2 := asString(submitted)
		return ok1 && ok2 && want == got
	case model.QuestionMultiCorrect:
		want, ok1 := asStringSlice(q.CorrectAnswer)
		got, ok2 := asStringSlice(submitted)
		return ok1 && ok2 && sameStringSet(want, got)
	case model.QuestionNumerical:
		want, ok1 := asNumber(q.CorrectAnswer)
		got, ok2 := asNumber(submitted)
		return ok1 && ok2 && want == got
	default:
		return false
	}
}

// Score computes the aggregate for an attempt: only questions present in
// AttemptedQuestions are checked; correct earns Marks, wrong costs
// PenaltyMarks, unattempted contributes zero. The sum is not clamped and
// may go negative. Subjective questions are excluded from automatic
// scoring entirely.
func Score(qz model.Quiz, a model.QuizAttempt) float64 {
	var total float64
	for _, q := range qz.Questions {
		if q.Type == model.QuestionSubjective {
			continue
		}
		if !a.Attempted(q.ID) {
			continue
		}
		if Correct(q, a.Answers[q.ID]) {
			total += q.Marks
		} else {
			total -= q.PenaltyMarks
		}
	}
	return total
}

// --- answer coercion ---

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asStringSlice accepts []string and the []any that JSON decoding
// produces. Both sides are copied into fresh slices; grading must not
// mutate caller-owned answer data.
func asStringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// asNumber coerces numbers and numeric strings. Comparison is exact; both
// sides are typically integers or short decimals in this domain.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// sameStringSet compares as multisets via counts, order-independent and
// without sorting either input.
func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}
