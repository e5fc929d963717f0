package model

import "time"

// Class is the roster/timetable container students are assigned to.
type Class struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeacherID string    `json:"teacher_id,omitempty"`
	Students  []string  `json:"students,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Class) EntityID() string { return c.ID }

type TimetableSlot struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	Day       string    `json:"day"` // monday..sunday
	Period    int       `json:"period"`
	Subject   string    `json:"subject"`
	TeacherID string    `json:"teacher_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (t TimetableSlot) EntityID() string { return t.ID }

type SalaryStatus string

const (
	SalaryPaid    SalaryStatus = "paid"
	SalaryPending SalaryStatus = "pending"
)

type Salary struct {
	ID        string       `json:"id"`
	StaffID   string       `json:"staff_id"`
	Month     string       `json:"month"` // YYYY-MM
	Amount    float64      `json:"amount"`
	Status    SalaryStatus `json:"status"`
	PaidAt    *time.Time   `json:"paid_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (s Salary) EntityID() string { return s.ID }
