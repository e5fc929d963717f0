package school

import (
	"context"
	"time"

	"github.com/classdesk/classdesk/internal/model"
)

func (s *Service) CreateAssignment(ctx context.Context, a model.Assignment) (model.Assignment, error) {
	if _, ok := s.Courses.Get(ctx, a.CourseID); !ok {
		return model.Assignment{}, ErrNotFound
	}
	a.ID = newID()
	a.CreatedAt = time.Now().UTC()
	if err := s.Assignments.Add(ctx, a); err != nil {
		return model.Assignment{}, err
	}
	return a, nil
}

func (s *Service) AssignmentsByCourse(ctx context.Context, courseID string) []model.Assignment {
	return s.Assignments.Filter(ctx, func(a model.Assignment) bool { return a.CourseID == courseID })
}

// SubmitAssignment stores a student's submission. The attachment arrives
// as a ready-made data URL.
func (s *Service) SubmitAssignment(ctx context.Context, sub model.Submission) (model.Submission, error) {
	if _, ok := s.Assignments.Get(ctx, sub.AssignmentID); !ok {
		return model.Submission{}, ErrNotFound
	}
	sub.ID = newID()
	sub.SubmittedAt = time.Now().UTC()
	sub.Grade = nil
	sub.GradedAt = nil
	if err := s.Submissions.Add(ctx, sub); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// GradeSubmission records a manual grade. This is also the channel for
// subjective quiz questions, which the attempt engine never auto-grades.
func (s *Service) GradeSubmission(ctx context.Context, id string, grade float64, feedback, gradedBy string) (model.Submission, bool, error) {
	now := time.Now().UTC()
	return s.Submissions.Update(ctx, id, func(sub *model.Submission) {
		sub.Grade = &grade
		sub.Feedback = feedback
		sub.GradedBy = gradedBy
		sub.GradedAt = &now
	})
}

func (s *Service) SubmissionsByAssignment(ctx context.Context, assignmentID string) []model.Submission {
	return s.Submissions.Filter(ctx, func(sub model.Submission) bool { return sub.AssignmentID == assignmentID })
}
