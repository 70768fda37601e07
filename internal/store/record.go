package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const recordTable = "stats"

var recordColumns = []string{
	"id",
	"question_type",
	"formatted_body",
	"is_answer_right",
	"time_millis",
	"created_at_millis",
}

// migrate creates the record table if it doesn't exist.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	const ddl = `CREATE TABLE IF NOT EXISTS stats (
		id TEXT NOT NULL PRIMARY KEY,
		question_type TEXT NOT NULL,
		formatted_body TEXT NOT NULL,
		is_answer_right INTEGER NOT NULL,
		time_millis INTEGER NOT NULL,
		created_at_millis INTEGER NOT NULL
	)`
	if err := drv.Exec(ctx, ddl, []any{}, nil); err != nil {
		return fmt.Errorf("create %s table: %w", recordTable, err)
	}
	const idx = `CREATE INDEX IF NOT EXISTS stats_created_at ON stats (created_at_millis)`
	if err := drv.Exec(ctx, idx, []any{}, nil); err != nil {
		return fmt.Errorf("create %s index: %w", recordTable, err)
	}
	return nil
}

type recordRepo struct {
	drv *entsql.Driver
}

func (r *recordRepo) Save(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, rec := range records {
		query, args := entsql.Dialect(dialect.SQLite).
			Insert(recordTable).
			Columns(recordColumns...).
			Values(rec.ID, rec.QuestionType, rec.FormattedBody, rec.IsAnswerRight, rec.TimeMillis, rec.CreatedAtMillis).
			OnConflict(
				entsql.ConflictColumns("id"),
				entsql.ResolveWithNewValues(),
			).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *recordRepo) All(ctx context.Context) ([]Record, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(recordColumns...).
		From(b.Table(recordTable)).
		OrderBy("created_at_millis", "rowid").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	if err := entsql.ScanSlice(rows, &records); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	return records, nil
}

func (r *recordRepo) Reset(ctx context.Context) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).Delete(recordTable).Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
