package school

import (
	"context"
	"time"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/model"
)

func (s *Service) CreateFeeStructure(ctx context.Context, f model.FeeStructure) (model.FeeStructure, error) {
	f.ID = newID()
	f.CreatedAt = time.Now().UTC()
	if err := s.FeeStructures.Add(ctx, f); err != nil {
		return model.FeeStructure{}, err
	}
	return f, nil
}

// CreateFeeRecord opens dues for a student against a structure; the total
// owed is the sum of the structure's components.
func (s *Service) CreateFeeRecord(ctx context.Context, studentID, structureID string, dueDate time.Time) (model.FeeRecord, error) {
	fs, ok := s.FeeStructures.Get(ctx, structureID)
	if !ok {
		return model.FeeRecord{}, ErrNotFound
	}
	if _, ok := s.Users.Get(ctx, studentID); !ok {
		return model.FeeRecord{}, ErrNotFound
	}
	r := model.FeeRecord{
		ID:          newID(),
		StudentID:   studentID,
		StructureID: structureID,
		TotalAmount: fs.TotalAmount(),
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.FeeRecords.Add(ctx, r); err != nil {
		return model.FeeRecord{}, err
	}
	return r, nil
}

// RecordPayment appends a payment and accumulates PaidAmount. Status is
// derived from the updated record, never stored.
func (s *Service) RecordPayment(ctx context.Context, recordID string, amount float64, mode string) (model.FeeRecord, bool, error) {
	p := model.Payment{ID: newID(), Amount: amount, Mode: mode, PaidAt: time.Now().UTC()}
	r, found, err := s.FeeRecords.Update(ctx, recordID, func(r *model.FeeRecord) {
		r.Payments = append(r.Payments, p)
		r.PaidAmount += amount
	})
	if err == nil && found {
		s.logEvent(ctx, audit.TypePaymentRecorded, recordID, p)
	}
	return r, found, err
}

func (s *Service) FeeRecordsByStudent(ctx context.Context, studentID string) []model.FeeRecord {
	return s.FeeRecords.Filter(ctx, func(r model.FeeRecord) bool { return r.StudentID == studentID })
}
