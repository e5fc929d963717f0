package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func CreateAnnouncementHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var a model.Announcement
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil || a.Title == "" {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		a.CreatedBy = authmw.SubjectFromContext(r.Context())
		created, err := svc.CreateAnnouncement(r.Context(), a)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func ListAnnouncementsHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, svc.ListAnnouncements(r.Context()))
	}
}

// POST /announcements/{announcementID}/read: append-only read tracking.
func MarkAnnouncementReadHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		a, found, err := svc.MarkAnnouncementRead(r.Context(),
			chi.URLParam(r, "announcementID"), authmw.SubjectFromContext(r.Context()))
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
