package model

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// User covers all three roles. ClassID is set for students only; Classes
// holds the classes a teacher is assigned to.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"password_hash,omitempty"`
	Role             Role      `json:"role"`
	Photo            string    `json:"photo,omitempty"`
	DOB              string    `json:"dob,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	EnrollmentNumber string    `json:"enrollment_number,omitempty"`
	Department       string    `json:"department,omitempty"`
	ClassID          string    `json:"class_id,omitempty"`
	Classes          []string  `json:"classes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u User) EntityID() string { return u.ID }

// Sanitized strips the credential hash for wire responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
