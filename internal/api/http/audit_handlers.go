package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/classdesk/classdesk/internal/audit"
)

// GET /audit?limit=N: admin view of recent mutations.
func ListEventsHandler(log *audit.Log) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		events, err := log.Recent(r.Context(), limit)
		if err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []audit.Event{}
		}
		writeJSON(w, events)
	}
}
