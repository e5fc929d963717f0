package model

import "time"

type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	CreatedBy        string    `json:"created_by"`
	Quizzes          []string  `json:"quizzes,omitempty"`
	EnrolledStudents []string  `json:"enrolled_students,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c Course) EntityID() string { return c.ID }

func (c Course) Enrolled(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}
