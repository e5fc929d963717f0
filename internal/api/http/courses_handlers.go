package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateCourseHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Title) == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		c, err := svc.CreateCourse(r.Context(), req.Title, req.Description, authmw.SubjectFromContext(r.Context()))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, c)
	}
}

func ListCoursesHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, svc.Courses.All(r.Context()))
	}
}

func GetCourseHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		c, ok := svc.Courses.Get(r.Context(), chi.URLParam(r, "courseID"))
		if !ok {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, c)
	}
}

func EnrollHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			StudentID string `json:"student_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudentID == "" {
			nethttp.Error(w, "student_id required", nethttp.StatusBadRequest)
			return
		}
		c, found, err := svc.EnrollStudent(r.Context(), chi.URLParam(r, "courseID"), req.StudentID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, c)
	}
}

func UnenrollHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		c, found, err := svc.UnenrollStudent(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "studentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, c)
	}
}

func DeleteCourseHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		found, err := svc.Courses.Delete(r.Context(), chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]bool{"deleted": found})
	}
}
