package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateClassHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Name      string `json:"name"`
			TeacherID string `json:"teacher_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			nethttp.Error(w, "name required", nethttp.StatusBadRequest)
			return
		}
		c, err := svc.CreateClass(r.Context(), req.Name, req.TeacherID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, c)
	}
}

func ListClassesHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, svc.Classes.All(r.Context()))
	}
}

func AssignStudentHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			StudentID string `json:"student_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudentID == "" {
			nethttp.Error(w, "student_id required", nethttp.StatusBadRequest)
			return
		}
		c, found, err := svc.AssignStudent(r.Context(), chi.URLParam(r, "classID"), req.StudentID)
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

// DELETE /classes/{classID}: batch-unassigns every affected user.
func DeleteClassHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		found, err := svc.DeleteClass(r.Context(), chi.URLParam(r, "classID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]bool{"deleted": found})
	}
}

func AddTimetableSlotHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var t model.TimetableSlot
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil || t.Day == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		t.ClassID = chi.URLParam(r, "classID")
		created, err := svc.AddTimetableSlot(r.Context(), t)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func GetTimetableHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, svc.TimetableByClass(r.Context(), chi.URLParam(r, "classID")))
	}
}

func CreateSalaryHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			StaffID string  `json:"staff_id"`
			Month   string  `json:"month"`
			Amount  float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StaffID == "" || req.Month == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		sal, err := svc.CreateSalary(r.Context(), req.StaffID, req.Month, req.Amount)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, sal)
	}
}

// GET /salaries?staff_id=...: non-admin staff see their own records.
func ListSalariesHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		staffID := r.URL.Query().Get("staff_id")
		if !isAdmin(r) {
			staffID = authmw.SubjectFromContext(r.Context())
		}
		if staffID == "" {
			writeJSON(w, svc.Salaries.All(r.Context()))
			return
		}
		writeJSON(w, svc.SalariesByStaff(r.Context(), staffID))
	}
}

func PaySalaryHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		sal, found, err := svc.PaySalary(r.Context(), chi.URLParam(r, "salaryID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, sal)
	}
}
