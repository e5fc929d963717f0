package school

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/store"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// Collection keys on the shared key-value medium.
const (
	keyUsers         = "users"
	keyCourses       = "courses"
	keyQuizzes       = "quizzes"
	keyAttempts      = "quiz_attempts"
	keyFeeStructures = "fee_structures"
	keyFeeRecords    = "fee_records"
	keyAnnouncements = "announcements"
	keyAssignments   = "assignments"
	keySubmissions   = "submissions"
	keySalaries      = "salaries"
	keyClasses       = "classes"
	keyTimetable     = "timetable_slots"
)

// Service orchestrates the entity collections. Each collection is
// independent; operations that touch more than one perform sequential
// writes, with cascades batched into a single Replace per collection.
type Service struct {
	Users         *store.Collection[model.User]
	Courses       *store.Collection[model.Course]
	Quizzes       *store.Collection[model.Quiz]
	Attempts      *store.Collection[model.QuizAttempt]
	FeeStructures *store.Collection[model.FeeStructure]
	FeeRecords    *store.Collection[model.FeeRecord]
	Announcements *store.Collection[model.Announcement]
	Assignments   *store.Collection[model.Assignment]
	Submissions   *store.Collection[model.Submission]
	Salaries      *store.Collection[model.Salary]
	Classes       *store.Collection[model.Class]
	Timetable     *store.Collection[model.TimetableSlot]

	log *audit.Log
}

// New wires every collection onto kv. log may be nil (tests).
func New(kv store.KV, log *audit.Log) *Service {
	return &Service{
		Users:         store.NewCollection[model.User](kv, keyUsers),
		Courses:       store.NewCollection[model.Course](kv, keyCourses),
		Quizzes:       store.NewCollection[model.Quiz](kv, keyQuizzes),
		Attempts:      store.NewCollection[model.QuizAttempt](kv, keyAttempts),
		FeeStructures: store.NewCollection[model.FeeStructure](kv, keyFeeStructures),
		FeeRecords:    store.NewCollection[model.FeeRecord](kv, keyFeeRecords),
		Announcements: store.NewCollection[model.Announcement](kv, keyAnnouncements),
		Assignments:   store.NewCollection[model.Assignment](kv, keyAssignments),
		Submissions:   store.NewCollection[model.Submission](kv, keySubmissions),
		Salaries:      store.NewCollection[model.Salary](kv, keySalaries),
		Classes:       store.NewCollection[model.Class](kv, keyClasses),
		Timetable:     store.NewCollection[model.TimetableSlot](kv, keyTimetable),
		log:           log,
	}
}

func newID() string { return uuid.NewString() }

func (s *Service) logEvent(ctx context.Context, typ, key string, data any) {
	if s.log == nil {
		return
	}
	// Audit is best-effort; a full medium must not block the mutation
	// that already happened.
	_ = s.log.Append(ctx, typ, key, data)
}
