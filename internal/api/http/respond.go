package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"github.com/classdesk/classdesk/internal/rbac"
	"github.com/classdesk/classdesk/internal/school"
	"github.com/classdesk/classdesk/internal/store"
)

func isAdmin(r *nethttp.Request) bool {
	return rbac.RoleFromContext(r.Context()) == "admin"
}

func rbacRole(r *nethttp.Request) string {
	return rbac.RoleFromContext(r.Context())
}

func writeJSON(w nethttp.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps service errors onto statuses. A store write failure is a
// recoverable warning: the mutation was not applied and prior state is
// intact, so the client retries or frees space.
func writeErr(w nethttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, school.ErrNotFound):
		nethttp.Error(w, "not found", nethttp.StatusNotFound)
	case errors.Is(err, school.ErrEmailTaken):
		nethttp.Error(w, "email already registered", nethttp.StatusConflict)
	case errors.Is(err, school.ErrInvalidCredentials):
		nethttp.Error(w, "invalid credentials", nethttp.StatusUnauthorized)
	case errors.Is(err, school.ErrInvalidRole):
		nethttp.Error(w, "invalid role", nethttp.StatusBadRequest)
	case errors.Is(err, store.ErrWriteFailed):
		nethttp.Error(w, "storage full: change not saved", nethttp.StatusInsufficientStorage)
	default:
		nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
	}
}
