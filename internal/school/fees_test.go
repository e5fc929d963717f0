package school_test

import (
	"context"
	"testing"
	"time"

	"github.com/classdesk/classdesk/internal/model"
)

func TestFeeRecordLifecycle(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	student := seedStudent(t, svc, "Asha", "asha@example.com")

	fs, err := svc.CreateFeeStructure(ctx, model.FeeStructure{
		Name: "Term 1",
		Components: []model.FeeComponent{
			{Name: "Tuition", Amount: 800},
			{Name: "Lab", Amount: 200},
		},
	})
	if err != nil {
		t.Fatalf("structure: %v", err)
	}

	rec, err := svc.CreateFeeRecord(ctx, student.ID, fs.ID, dueIn(30*24*time.Hour))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.TotalAmount != 1000 {
		t.Fatalf("total = %v, want 1000", rec.TotalAmount)
	}
	if got := rec.Status(time.Now()); got != model.FeePending {
		t.Fatalf("status = %v, want pending", got)
	}

	rec, found, err := svc.RecordPayment(ctx, rec.ID, 400, "cash")
	if err != nil || !found {
		t.Fatalf("payment: found=%v err=%v", found, err)
	}
	if rec.PaidAmount != 400 || len(rec.Payments) != 1 {
		t.Fatalf("after first payment: %+v", rec)
	}
	if got := rec.Status(time.Now()); got != model.FeePartial {
		t.Fatalf("status = %v, want partial", got)
	}

	rec, _, err = svc.RecordPayment(ctx, rec.ID, 600, "upi")
	if err != nil {
		t.Fatalf("payment: %v", err)
	}
	if got := rec.Status(time.Now()); got != model.FeePaid {
		t.Fatalf("status = %v, want paid", got)
	}

	recs := svc.FeeRecordsByStudent(ctx, student.ID)
	if len(recs) != 1 || recs[0].PaidAmount != 1000 {
		t.Fatalf("by student: %+v", recs)
	}
}

func TestFeeStatusOverdue(t *testing.T) {
	rec := model.FeeRecord{TotalAmount: 100, DueDate: time.Now().Add(-time.Hour)}
	if got := rec.Status(time.Now()); got != model.FeeOverdue {
		t.Fatalf("status = %v, want overdue", got)
	}
	rec.PaidAmount = 10
	if got := rec.Status(time.Now()); got != model.FeePartial {
		t.Fatalf("status = %v, want partial", got)
	}
}

func TestFeeStatusZeroTotal(t *testing.T) {
	// nothing owed is settled, even past the due date
	rec := model.FeeRecord{TotalAmount: 0, DueDate: time.Now().Add(-time.Hour)}
	if got := rec.Status(time.Now()); got != model.FeePaid {
		t.Fatalf("status = %v, want paid", got)
	}
}

func TestCreateFeeRecordUnknownRefs(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	student := seedStudent(t, svc, "Asha", "asha@example.com")

	if _, err := svc.CreateFeeRecord(ctx, student.ID, "missing", dueIn(time.Hour)); err == nil {
		t.Fatalf("unknown structure must fail")
	}
	fs, _ := svc.CreateFeeStructure(ctx, model.FeeStructure{
		Name: "Term 1", Components: []model.FeeComponent{{Name: "Tuition", Amount: 1}},
	})
	if _, err := svc.CreateFeeRecord(ctx, "missing", fs.ID, dueIn(time.Hour)); err == nil {
		t.Fatalf("unknown student must fail")
	}
}
