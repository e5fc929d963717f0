package http

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateFeeStructureHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var f model.FeeStructure
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil || f.Name == "" || len(f.Components) == 0 {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		created, err := svc.CreateFeeStructure(r.Context(), f)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func CreateFeeRecordHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			StudentID   string    `json:"student_id"`
			StructureID string    `json:"structure_id"`
			DueDate     time.Time `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudentID == "" || req.StructureID == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		rec, err := svc.CreateFeeRecord(r.Context(), req.StudentID, req.StructureID, req.DueDate)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, rec)
	}
}

// POST /fees/{recordID}/payments  { "amount", "mode" }
func RecordPaymentHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Amount float64 `json:"amount"`
			Mode   string  `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
			nethttp.Error(w, "positive amount required", nethttp.StatusBadRequest)
			return
		}
		rec, found, err := svc.RecordPayment(r.Context(), chi.URLParam(r, "recordID"), req.Amount, req.Mode)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, feeRecordView(rec))
	}
}

// GET /fees?student_id=...: students see their own records only.
func ListFeeRecordsHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		studentID := r.URL.Query().Get("student_id")
		if rbacRole(r) == "student" {
			studentID = authmw.SubjectFromContext(r.Context())
		}
		var recs []model.FeeRecord
		if studentID != "" {
			recs = svc.FeeRecordsByStudent(r.Context(), studentID)
		} else {
			recs = svc.FeeRecords.All(r.Context())
		}
		out := make([]map[string]any, 0, len(recs))
		for _, rec := range recs {
			out = append(out, feeRecordView(rec))
		}
		writeJSON(w, out)
	}
}

// feeRecordView attaches the derived status.
func feeRecordView(rec model.FeeRecord) map[string]any {
	return map[string]any{
		"record": rec,
		"status": rec.Status(time.Now()),
	}
}
