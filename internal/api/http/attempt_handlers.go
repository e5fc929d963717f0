package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/school"
)

// POST /attempts  { "quiz_id", "language" }
func StartAttemptHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			QuizID   string `json:"quiz_id"`
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuizID == "" {
			nethttp.Error(w, "quiz_id required", nethttp.StatusBadRequest)
			return
		}
		a, err := svc.StartAttempt(r.Context(), req.QuizID, authmw.SubjectFromContext(r.Context()), req.Language)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

// POST /attempts/{attemptID}/progress: merge answers and navigation sets.
func SaveProgressHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var p school.AttemptProgress
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		a, found, err := svc.SaveProgress(r.Context(), chi.URLParam(r, "attemptID"), p)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, a)
	}
}

func SubmitAttemptHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		a, err := svc.SubmitAttempt(r.Context(), chi.URLParam(r, "attemptID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func GetAttemptHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		a, ok := svc.Attempts.Get(r.Context(), chi.URLParam(r, "attemptID"))
		if !ok {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		if a.StudentID != sub && !isAdmin(r) && rbacRole(r) != "teacher" {
			nethttp.Error(w, "forbidden", nethttp.StatusForbidden)
			return
		}
		writeJSON(w, a)
	}
}

// GET /quizzes/{quizID}/result: the caller's best attempt plus rank.
func ResultHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		studentID := r.URL.Query().Get("student_id")
		if studentID == "" {
			studentID = authmw.SubjectFromContext(r.Context())
		}
		res, err := svc.Result(r.Context(), chi.URLParam(r, "quizID"), studentID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	}
}
