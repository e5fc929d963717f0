package http

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func ListUsersHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		role := r.URL.Query().Get("role")
		users := svc.Users.All(r.Context())
		out := make([]model.User, 0, len(users))
		for _, u := range users {
			if role != "" && string(u.Role) != role {
				continue
			}
			out = append(out, u.Sanitized())
		}
		writeJSON(w, out)
	}
}

func GetUserHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		u, ok := svc.Users.Get(r.Context(), chi.URLParam(r, "userID"))
		if !ok {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, u.Sanitized())
	}
}

// PATCH /users/{userID}: partial profile update. Non-admins can only
// update themselves. Returns the updated record so the client refreshes
// its cached session copy from the response.
func UpdateUserHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		id := chi.URLParam(r, "userID")
		sub := authmw.SubjectFromContext(r.Context())
		if sub != id && !isAdmin(r) {
			nethttp.Error(w, "forbidden", nethttp.StatusForbidden)
			return
		}
		var upd school.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		u, found, err := svc.UpdateUser(r.Context(), id, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !found {
			nethttp.Error(w, "not found", nethttp.StatusNotFound)
			return
		}
		writeJSON(w, u)
	}
}

// DELETE /users/{userID}: admin only (routed); cascades class rosters.
func DeleteUserHandler(svc *school.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		found, err := svc.DeleteUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]bool{"deleted": found})
	}
}
