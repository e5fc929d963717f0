package school

import (
	"context"
	"time"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/model"
)

func (s *Service) CreateClass(ctx context.Context, name, teacherID string) (model.Class, error) {
	c := model.Class{ID: newID(), Name: name, TeacherID: teacherID, CreatedAt: time.Now().UTC()}
	if err := s.Classes.Add(ctx, c); err != nil {
		return model.Class{}, err
	}
	if teacherID != "" {
		_, _, err := s.Users.Update(ctx, teacherID, func(u *model.User) {
			u.Classes = append(u.Classes, c.ID)
		})
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

// AssignStudent sets the student's single class and adds them to the
// roster.
func (s *Service) AssignStudent(ctx context.Context, classID, studentID string) (model.Class, bool, error) {
	if _, found, err := s.Users.Update(ctx, studentID, func(u *model.User) {
		u.ClassID = classID
	}); err != nil || !found {
		return model.Class{}, found, err
	}
	c, found, err := s.Classes.Update(ctx, classID, func(c *model.Class) {
		for _, id := range c.Students {
			if id == studentID {
				return
			}
		}
		c.Students = append(c.Students, studentID)
	})
	if err == nil && found {
		s.logEvent(ctx, audit.TypeRosterChanged, classID, map[string]string{"added": studentID})
	}
	return c, found, err
}

// DeleteClass removes the class and unassigns every affected user with a
// single batched rewrite of the user collection, rather than one write
// per student.
func (s *Service) DeleteClass(ctx context.Context, classID string) (bool, error) {
	found, err := s.Classes.Delete(ctx, classID)
	if err != nil || !found {
		return found, err
	}
	users := s.Users.All(ctx)
	changed := false
	for i := range users {
		if users[i].ClassID == classID {
			users[i].ClassID = ""
			changed = true
		}
		kept := users[i].Classes[:0]
		for _, id := range users[i].Classes {
			if id == classID {
				changed = true
				continue
			}
			kept = append(kept, id)
		}
		users[i].Classes = kept
	}
	if changed {
		if err := s.Users.Replace(ctx, users); err != nil {
			return true, err
		}
	}
	slots := s.Timetable.Filter(ctx, func(t model.TimetableSlot) bool { return t.ClassID != classID })
	if err := s.Timetable.Replace(ctx, slots); err != nil {
		return true, err
	}
	s.logEvent(ctx, audit.TypeRosterChanged, classID, map[string]string{"deleted": classID})
	return true, nil
}

func (s *Service) AddTimetableSlot(ctx context.Context, t model.TimetableSlot) (model.TimetableSlot, error) {
	if _, ok := s.Classes.Get(ctx, t.ClassID); !ok {
		return model.TimetableSlot{}, ErrNotFound
	}
	t.ID = newID()
	t.CreatedAt = time.Now().UTC()
	if err := s.Timetable.Add(ctx, t); err != nil {
		return model.TimetableSlot{}, err
	}
	return t, nil
}

func (s *Service) TimetableByClass(ctx context.Context, classID string) []model.TimetableSlot {
	return s.Timetable.Filter(ctx, func(t model.TimetableSlot) bool { return t.ClassID == classID })
}

func (s *Service) CreateSalary(ctx context.Context, staffID, month string, amount float64) (model.Salary, error) {
	if _, ok := s.Users.Get(ctx, staffID); !ok {
		return model.Salary{}, ErrNotFound
	}
	sal := model.Salary{
		ID:        newID(),
		StaffID:   staffID,
		Month:     month,
		Amount:    amount,
		Status:    model.SalaryPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Salaries.Add(ctx, sal); err != nil {
		return model.Salary{}, err
	}
	return sal, nil
}

func (s *Service) PaySalary(ctx context.Context, id string) (model.Salary, bool, error) {
	now := time.Now().UTC()
	return s.Salaries.Update(ctx, id, func(sal *model.Salary) {
		if sal.Status == model.SalaryPaid {
			return
		}
		sal.Status = model.SalaryPaid
		sal.PaidAt = &now
	})
}

func (s *Service) SalariesByStaff(ctx context.Context, staffID string) []model.Salary {
	return s.Salaries.Filter(ctx, func(sal model.Salary) bool { return sal.StaffID == staffID })
}
