package school

import (
	"context"
	"time"

	"github.com/classdesk/classdesk/internal/model"
)

func (s *Service) CreateCourse(ctx context.Context, title, description, createdBy string) (model.Course, error) {
	c := model.Course{
		ID:          newID(),
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Courses.Add(ctx, c); err != nil {
		return model.Course{}, err
	}
	return c, nil
}

// EnrollStudent adds the student to the course's enrolled set; already
// enrolled is a no-op.
func (s *Service) EnrollStudent(ctx context.Context, courseID, studentID string) (model.Course, bool, error) {
	return s.Courses.Update(ctx, courseID, func(c *model.Course) {
		if c.Enrolled(studentID) {
			return
		}
		c.EnrolledStudents = append(c.EnrolledStudents, studentID)
	})
}

func (s *Service) UnenrollStudent(ctx context.Context, courseID, studentID string) (model.Course, bool, error) {
	return s.Courses.Update(ctx, courseID, func(c *model.Course) {
		kept := c.EnrolledStudents[:0]
		for _, id := range c.EnrolledStudents {
			if id != studentID {
				kept = append(kept, id)
			}
		}
		c.EnrolledStudents = kept
	})
}

// CreateQuiz stores the quiz and appends its id to the owning course.
func (s *Service) CreateQuiz(ctx context.Context, q model.Quiz) (model.Quiz, error) {
	if _, ok := s.Courses.Get(ctx, q.CourseID); !ok {
		return model.Quiz{}, ErrNotFound
	}
	q.ID = newID()
	for i := range q.Questions {
		if q.Questions[i].ID == "" {
			q.Questions[i].ID = newID()
		}
	}
	q.CreatedAt = time.Now().UTC()
	if err := s.Quizzes.Add(ctx, q); err != nil {
		return model.Quiz{}, err
	}
	_, _, err := s.Courses.Update(ctx, q.CourseID, func(c *model.Course) {
		c.Quizzes = append(c.Quizzes, q.ID)
	})
	return q, err
}

func (s *Service) QuizzesByCourse(ctx context.Context, courseID string) []model.Quiz {
	return s.Quizzes.Filter(ctx, func(q model.Quiz) bool { return q.CourseID == courseID })
}
