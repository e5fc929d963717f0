package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/classdesk/classdesk/internal/api/http"
	auth "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/db"
	"github.com/classdesk/classdesk/internal/rbac"
	"github.com/classdesk/classdesk/internal/school"
	"github.com/classdesk/classdesk/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { dbh.Close() })

	svc := school.New(store.NewSQLKV(dbh), nil)
	authSvc := auth.NewAuthService("test-secret")

	r := chi.NewRouter()
	r.Post("/auth/signup", api.SignupHandler(svc, authSvc))
	r.Post("/auth/login", api.LoginHandler(svc, authSvc))
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.With(rbac.Require("course:create")).Post("/courses", api.CreateCourseHandler(svc))
		pr.With(rbac.Require("quiz:create")).Post("/quizzes", api.CreateQuizHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}", api.GetQuizHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}/result", api.ResultHandler(svc))
		pr.With(rbac.Require("attempt:create")).Post("/attempts", api.StartAttemptHandler(svc))
		pr.With(rbac.Require("attempt:save")).Post("/attempts/{attemptID}/progress", api.SaveProgressHandler(svc))
		pr.With(rbac.Require("attempt:submit")).Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(svc))
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *nethttp.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := nethttp.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := nethttp.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, url, err)
		}
	}
	return resp
}

func signup(t *testing.T, ts *httptest.Server, name, email, role string) (token string) {
	t.Helper()
	var out struct {
		AccessToken string `json:"access_token"`
	}
	resp := doJSON(t, "POST", ts.URL+"/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": "pw", "role": role,
	}, &out)
	if resp.StatusCode != 200 {
		t.Fatalf("signup %s: status %d", email, resp.StatusCode)
	}
	return out.AccessToken
}

func TestQuizFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	teacher := signup(t, ts, "T", "t@example.com", "teacher")
	student := signup(t, ts, "S", "s@example.com", "student")

	var course struct {
		ID string `json:"id"`
	}
	doJSON(t, "POST", ts.URL+"/courses", teacher, map[string]string{"title": "Physics"}, &course)
	if course.ID == "" {
		t.Fatalf("course not created")
	}

	var quiz struct {
		ID        string `json:"id"`
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	doJSON(t, "POST", ts.URL+"/quizzes", teacher, map[string]any{
		"title":     "Kinematics",
		"course_id": course.ID,
		"duration":  30,
		"questions": []map[string]any{
			{"type": "single-correct", "marks": 4, "penalty_marks": 1, "correct_answer": "B"},
		},
	}, &quiz)
	if quiz.ID == "" || len(quiz.Questions) != 1 {
		t.Fatalf("quiz not created: %+v", quiz)
	}
	qID := quiz.Questions[0].ID

	// students must not see answer keys
	var served struct {
		Questions []struct {
			CorrectAnswer any `json:"correct_answer"`
		} `json:"questions"`
	}
	doJSON(t, "GET", ts.URL+"/quizzes/"+quiz.ID, student, nil, &served)
	if served.Questions[0].CorrectAnswer != nil {
		t.Fatalf("answer key leaked to student")
	}

	// a student may not create quizzes
	resp := doJSON(t, "POST", ts.URL+"/quizzes", student, map[string]any{
		"title": "x", "course_id": course.ID,
	}, nil)
	if resp.StatusCode != nethttp.StatusForbidden {
		t.Fatalf("student quiz create: status %d, want 403", resp.StatusCode)
	}

	var attempt struct {
		ID string `json:"id"`
	}
	doJSON(t, "POST", ts.URL+"/attempts", student, map[string]string{"quiz_id": quiz.ID}, &attempt)
	if attempt.ID == "" {
		t.Fatalf("attempt not started")
	}

	doJSON(t, "POST", ts.URL+"/attempts/"+attempt.ID+"/progress", student, map[string]any{
		"answers":             map[string]any{qID: "B"},
		"attempted_questions": []string{qID},
	}, nil)

	var submitted struct {
		Score *float64 `json:"score"`
	}
	doJSON(t, "POST", ts.URL+"/attempts/"+attempt.ID+"/submit", student, nil, &submitted)
	if submitted.Score == nil || *submitted.Score != 4 {
		t.Fatalf("score = %v, want 4", submitted.Score)
	}

	var result struct {
		Rank  int `json:"rank"`
		Total int `json:"total"`
	}
	doJSON(t, "GET", ts.URL+"/quizzes/"+quiz.ID+"/result", student, nil, &result)
	if result.Rank != 1 || result.Total != 1 {
		t.Fatalf("result = %+v, want rank 1 of 1", result)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	ts := newTestServer(t)
	signup(t, ts, "A", "a@example.com", "student")

	resp := doJSON(t, "POST", ts.URL+"/auth/signup", "", map[string]string{
		"name": "B", "email": "a@example.com", "password": "pw", "role": "student",
	}, nil)
	if resp.StatusCode != nethttp.StatusConflict {
		t.Fatalf("duplicate signup: status %d, want 409", resp.StatusCode)
	}
}
