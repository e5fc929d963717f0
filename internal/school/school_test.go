package school_test

import (
	"context"
	"testing"
	"time"

	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

// memKV is the in-memory medium the service tests run on.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func newService() *school.Service { return school.New(newMemKV(), nil) }

func seedQuiz(t *testing.T, svc *school.Service) model.Quiz {
	t.Helper()
	ctx := context.Background()
	course, err := svc.CreateCourse(ctx, "Physics", "", "teacher-1")
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	q, err := svc.CreateQuiz(ctx, model.Quiz{
		Title:    "Kinematics",
		CourseID: course.ID,
		Duration: 30,
		Questions: []model.Question{
			{Type: model.QuestionSingleCorrect, Marks: 4, PenaltyMarks: 1, CorrectAnswer: "B"},
			{Type: model.QuestionNumerical, Marks: 2, CorrectAnswer: float64(42)},
		},
	})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	return q
}

func seedStudent(t *testing.T, svc *school.Service, name, email string) model.User {
	t.Helper()
	u, err := svc.Signup(context.Background(), model.User{
		Name: name, Email: email, Role: model.RoleStudent,
	}, "pw")
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return u
}

func dueIn(d time.Duration) time.Time { return time.Now().Add(d) }
