package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/quiz"
	"github.com/classdesk/classdesk/internal/rbac"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateQuizHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var q model.Quiz
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil || q.Title == "" || q.CourseID == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		q.CreatedBy = authmw.SubjectFromContext(r.Context())
		created, err := svc.CreateQuiz(r.Context(), q)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

// GET /quizzes/{quizID}: answer keys are stripped for students.
func GetQuizHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q, ok := svc.Quizzes.Get(r.Context(), chi.URLParam(r, "quizID"))
		if !ok {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		if rbac.RoleFromContext(r.Context()) == "student" {
			q = q.StripAnswers()
		}
		writeJSON(w, q)
	}
}

func ListQuizzesHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := r.URL.Query().Get("course_id")
		var quizzes []model.Quiz
		if courseID != "" {
			quizzes = svc.QuizzesByCourse(r.Context(), courseID)
		} else {
			quizzes = svc.Quizzes.All(r.Context())
		}
		if rbac.RoleFromContext(r.Context()) == "student" {
			for i := range quizzes {
				quizzes[i] = quizzes[i].StripAnswers()
			}
		}
		writeJSON(w, quizzes)
	}
}

// GET /quizzes/{quizID}/leaderboard: ordered submitted-attempt summaries.
func LeaderboardHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		entries := svc.Leaderboard(r.Context(), chi.URLParam(r, "quizID"))
		if entries == nil {
			entries = []quiz.RankEntry{}
		}
		writeJSON(w, entries)
	}
}
