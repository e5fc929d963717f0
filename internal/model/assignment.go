package model

import "time"

type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	MaxMarks    float64   `json:"max_marks"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a Assignment) EntityID() string { return a.ID }

// Submission carries the attachment as a ready-made data URL; conversion
// happens client-side. Grade and Feedback are set by manual grading.
type Submission struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignment_id"`
	StudentID    string     `json:"student_id"`
	Attachment   string     `json:"attachment,omitempty"`
	Text         string     `json:"text,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	Grade        *float64   `json:"grade,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
	GradedBy     string     `json:"graded_by,omitempty"`
}

func (s Submission) EntityID() string { return s.ID }
