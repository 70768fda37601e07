package store

import (
	"context"
	"time"
)

// Record is one answered drill question.
type Record struct {
	ID              string `sql:"id"`
	QuestionType    string `sql:"question_type"`
	FormattedBody   string `sql:"formatted_body"`
	IsAnswerRight   bool   `sql:"is_answer_right"`
	TimeMillis      int64  `sql:"time_millis"`
	CreatedAtMillis int64  `sql:"created_at_millis"`
}

// Elapsed returns the answer time as a duration.
func (r Record) Elapsed() time.Duration {
	return time.Duration(r.TimeMillis) * time.Millisecond
}

// CreatedAt returns the record timestamp in UTC.
func (r Record) CreatedAt() time.Time {
	return time.UnixMilli(r.CreatedAtMillis).UTC()
}

// RecordRepo stores and lists answer records.
type RecordRepo interface {
	// Save inserts records, replacing any existing record with the same ID.
	// All records are written in one transaction.
	Save(ctx context.Context, records ...Record) error

	// All returns every stored record, oldest first.
	All(ctx context.Context) ([]Record, error)

	// Reset deletes every record and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}
