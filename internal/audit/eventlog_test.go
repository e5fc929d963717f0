package audit_test

import (
	"context"
	"testing"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/db"
)

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:audittest.db?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer dbh.Close()

	log := audit.NewLog(dbh)
	if err := log.Append(ctx, audit.TypeAttemptSubmitted, "attempt-1", map[string]any{"score": 6}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := log.Append(ctx, audit.TypePaymentRecorded, "fee-1", nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := log.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	// newest first
	if events[0].Type != audit.TypePaymentRecorded || events[1].Type != audit.TypeAttemptSubmitted {
		t.Fatalf("order: %v, %v", events[0].Type, events[1].Type)
	}
	if events[1].DataJSON != `{"score":6}` {
		t.Fatalf("payload = %s", events[1].DataJSON)
	}
	if events[0].DataJSON != "{}" {
		t.Fatalf("nil payload = %s", events[0].DataJSON)
	}
}
