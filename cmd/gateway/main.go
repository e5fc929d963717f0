package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/classdesk/classdesk/internal/api/http"
	"github.com/classdesk/classdesk/internal/audit"
	auth "github.com/classdesk/classdesk/internal/auth/middleware"
	"github.com/classdesk/classdesk/internal/config"
	"github.com/classdesk/classdesk/internal/db"
	"github.com/classdesk/classdesk/internal/rbac"
	"github.com/classdesk/classdesk/internal/school"
	"github.com/classdesk/classdesk/internal/store"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	auditLog := audit.NewLog(dbh)
	svc := school.New(store.NewSQLKV(dbh), auditLog)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/signup", api.SignupHandler(svc, authSvc))
	r.Post("/auth/login", api.LoginHandler(svc, authSvc))

	// Protected API (JWT → role in context → permission gate)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("users:list")).Get("/users", api.ListUsersHandler(svc))
		pr.With(rbac.RequireAny("users:list", "user:update-own")).Get("/users/{userID}", api.GetUserHandler(svc))
		pr.With(rbac.Require("user:update-own")).Patch("/users/{userID}", api.UpdateUserHandler(svc))
		pr.With(rbac.Require("users:delete")).Delete("/users/{userID}", api.DeleteUserHandler(svc))

		pr.With(rbac.Require("course:create")).Post("/courses", api.CreateCourseHandler(svc))
		pr.With(rbac.Require("course:view")).Get("/courses", api.ListCoursesHandler(svc))
		pr.With(rbac.Require("course:view")).Get("/courses/{courseID}", api.GetCourseHandler(svc))
		pr.With(rbac.Require("course:enroll")).Post("/courses/{courseID}/enroll", api.EnrollHandler(svc))
		pr.With(rbac.Require("course:enroll")).Delete("/courses/{courseID}/enroll/{studentID}", api.UnenrollHandler(svc))
		pr.With(rbac.Require("course:delete")).Delete("/courses/{courseID}", api.DeleteCourseHandler(svc))

		pr.With(rbac.Require("quiz:create")).Post("/quizzes", api.CreateQuizHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes", api.ListQuizzesHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}", api.GetQuizHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}/leaderboard", api.LeaderboardHandler(svc))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}/result", api.ResultHandler(svc))

		// Student flow
		pr.With(rbac.Require("attempt:create")).Post("/attempts", api.StartAttemptHandler(svc))
		pr.With(rbac.Require("attempt:save")).Post("/attempts/{attemptID}/progress", api.SaveProgressHandler(svc))
		pr.With(rbac.Require("attempt:submit")).Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(svc))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).Get("/attempts/{attemptID}", api.GetAttemptHandler(svc))

		pr.With(rbac.Require("assignment:create")).Post("/assignments", api.CreateAssignmentHandler(svc))
		pr.With(rbac.Require("assignment:view")).Get("/assignments", api.ListAssignmentsHandler(svc))
		pr.With(rbac.Require("assignment:submit")).Post("/assignments/{assignmentID}/submissions", api.SubmitAssignmentHandler(svc))
		pr.With(rbac.Require("assignment:grade")).Get("/assignments/{assignmentID}/submissions", api.ListSubmissionsHandler(svc))
		pr.With(rbac.Require("assignment:grade")).Post("/submissions/{submissionID}/grade", api.GradeSubmissionHandler(svc))

		pr.With(rbac.Require("fee:manage")).Post("/fees/structures", api.CreateFeeStructureHandler(svc))
		pr.With(rbac.Require("fee:manage")).Post("/fees", api.CreateFeeRecordHandler(svc))
		pr.With(rbac.Require("fee:manage")).Post("/fees/{recordID}/payments", api.RecordPaymentHandler(svc))
		pr.With(rbac.RequireAny("fee:view-own", "fee:manage")).Get("/fees", api.ListFeeRecordsHandler(svc))

		pr.With(rbac.Require("announcement:create")).Post("/announcements", api.CreateAnnouncementHandler(svc))
		pr.With(rbac.Require("announcement:view")).Get("/announcements", api.ListAnnouncementsHandler(svc))
		pr.With(rbac.Require("announcement:read")).Post("/announcements/{announcementID}/read", api.MarkAnnouncementReadHandler(svc))

		pr.With(rbac.Require("class:manage")).Post("/classes", api.CreateClassHandler(svc))
		pr.With(rbac.RequireAny("class:view", "class:manage")).Get("/classes", api.ListClassesHandler(svc))
		pr.With(rbac.Require("class:manage")).Post("/classes/{classID}/students", api.AssignStudentHandler(svc))
		pr.With(rbac.Require("class:manage")).Delete("/classes/{classID}", api.DeleteClassHandler(svc))
		pr.With(rbac.Require("class:manage")).Post("/classes/{classID}/timetable", api.AddTimetableSlotHandler(svc))
		pr.With(rbac.RequireAny("timetable:view", "class:manage")).Get("/classes/{classID}/timetable", api.GetTimetableHandler(svc))

		pr.With(rbac.Require("salary:manage")).Post("/salaries", api.CreateSalaryHandler(svc))
		pr.With(rbac.RequireAny("salary:view-own", "salary:manage")).Get("/salaries", api.ListSalariesHandler(svc))
		pr.With(rbac.Require("salary:manage")).Post("/salaries/{salaryID}/pay", api.PaySalaryHandler(svc))

		pr.With(rbac.Require("audit:view")).Get("/audit", api.ListEventsHandler(auditLog))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
