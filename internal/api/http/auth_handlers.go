package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	authmw "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

// POST /auth/signup  { "name", "email", "password", "role", ... }
func SignupHandler(svc *school.Service, authSvc *authmw.AuthService) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Name             string `json:"name"`
			Email            string `json:"email"`
			Password         string `json:"password"`
			Role             string `json:"role"`
			EnrollmentNumber string `json:"enrollment_number"`
			Department       string `json:"department"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			nethttp.Error(w, "email and password required", nethttp.StatusBadRequest)
			return
		}
		u, err := svc.Signup(r.Context(), model.User{
			Name:             req.Name,
			Email:            req.Email,
			Role:             model.Role(req.Role),
			EnrollmentNumber: req.EnrollmentNumber,
			Department:       req.Department,
		}, req.Password)
		if err != nil {
			writeErr(w, err)
			return
		}
		tok, err := authSvc.IssueJWT(u.ID, string(u.Role))
		if err != nil {
			nethttp.Error(w, "issue token", nethttp.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"user": u, "access_token": tok})
	}
}

// POST /auth/login  { "email", "password" }
func LoginHandler(svc *school.Service, authSvc *authmw.AuthService) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		u, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeErr(w, err)
			return
		}
		tok, err := authSvc.IssueJWT(u.ID, string(u.Role))
		if err != nil {
			nethttp.Error(w, "issue token", nethttp.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"user": u, "access_token": tok})
	}
}
