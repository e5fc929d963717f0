package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	TypeAttemptSubmitted = "AttemptSubmitted"
	TypePaymentRecorded  = "PaymentRecorded"
	TypeRosterChanged    = "RosterChanged"
	TypeUserDeleted      = "UserDeleted"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// Log is an append-only record of notable mutations, kept beside the
// collections in the same database.
type Log struct{ db *sql.DB }

func NewLog(db *sql.DB) *Log { return &Log{db: db} }

// Append records an event. data is marshalled as the JSON payload; a nil
// data writes an empty object.
func (l *Log) Append(ctx context.Context, typ, key string, data any) error {
	payload := []byte("{}")
	if data != nil {
		buf, err := json.Marshal(data)
		if err != nil {
			return err
		}
		payload = buf
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(payload), time.Now().Unix())
	return err
}

// Recent returns up to limit events, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT "offset", typ, key, data, created_at FROM event_log
		 ORDER BY "offset" DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
