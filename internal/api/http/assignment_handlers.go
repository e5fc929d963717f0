package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateAssignmentHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var a model.Assignment
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil || a.Title == "" || a.CourseID == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		a.CreatedBy = authmw.SubjectFromContext(r.Context())
		created, err := svc.CreateAssignment(r.Context(), a)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func ListAssignmentsHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := r.URL.Query().Get("course_id")
		if courseID != "" {
			writeJSON(w, svc.AssignmentsByCourse(r.Context(), courseID))
			return
		}
		writeJSON(w, svc.Assignments.All(r.Context()))
	}
}

// POST /assignments/{assignmentID}/submissions
func SubmitAssignmentHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var sub model.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		sub.AssignmentID = chi.URLParam(r, "assignmentID")
		sub.StudentID = authmw.SubjectFromContext(r.Context())
		created, err := svc.SubmitAssignment(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func ListSubmissionsHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, svc.SubmissionsByAssignment(r.Context(), chi.URLParam(r, "assignmentID")))
	}
}

// POST /submissions/{submissionID}/grade  { "grade", "feedback" }
func GradeSubmissionHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Grade    float64 `json:"grade"`
			Feedback string  `json:"feedback"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		sub, found, err := svc.GradeSubmission(r.Context(), chi.URLParam(r, "submissionID"),
			req.Grade, req.Feedback, authmw.SubjectFromContext(r.Context()))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, sub)
	}
}
