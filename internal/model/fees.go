package model

import "time"

type FeeComponent struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type FeeStructure struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ClassID    string         `json:"class_id,omitempty"`
	Components []FeeComponent `json:"components"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (f FeeStructure) EntityID() string { return f.ID }

// TotalAmount is the sum of the structure's components.
func (f FeeStructure) TotalAmount() float64 {
	var sum float64
	for _, c := range f.Components {
		sum += c.Amount
	}
	return sum
}

type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Mode   string    `json:"mode,omitempty"`
	PaidAt time.Time `json:"paid_at"`
}

type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePartial FeeStatus = "partial"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// FeeRecord tracks one student's dues against a fee structure. PaidAmount
// accumulates from Payments; status is derived, never stored.
type FeeRecord struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StructureID string    `json:"structure_id"`
	TotalAmount float64   `json:"total_amount"`
	PaidAmount  float64   `json:"paid_amount"`
	DueDate     time.Time `json:"due_date"`
	Payments    []Payment `json:"payments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r FeeRecord) EntityID() string { return r.ID }

func (r FeeRecord) Status(now time.Time) FeeStatus {
	switch {
	case r.PaidAmount >= r.TotalAmount:
		return FeePaid
	case r.PaidAmount > 0:
		return FeePartial
	case now.After(r.DueDate):
		return FeeOverdue
	default:
		return FeePending
	}
}
