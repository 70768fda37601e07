package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordSaveAndAll(t *testing.T) {
	repo := openTestStore(t).RecordRepo()
	ctx := context.Background()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	records := []Record{
		{ID: "b", QuestionType: "sum", FormattedBody: "1 + 1 = ?", IsAnswerRight: true, TimeMillis: 1200, CreatedAtMillis: 2000},
		{ID: "a", QuestionType: "percent", FormattedBody: "123 = 100 %\n? ~= 12 %", IsAnswerRight: false, TimeMillis: 3400, CreatedAtMillis: 1000},
	}
	require.NoError(t, repo.Save(ctx, records...))

	all, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, records[1], all[0], "oldest first")
	assert.Equal(t, records[0], all[1])
	assert.Equal(t, int64(1000), all[0].CreatedAt().UnixMilli())
	assert.Equal(t, int64(1200), all[1].Elapsed().Milliseconds())
}

func TestRecordSave_ReplacesByID(t *testing.T) {
	repo := openTestStore(t).RecordRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Record{ID: "x", QuestionType: "sum", FormattedBody: "1 + 1 = ?", TimeMillis: 10, CreatedAtMillis: 1}))
	require.NoError(t, repo.Save(ctx, Record{ID: "x", QuestionType: "sum", FormattedBody: "1 + 1 = ?", IsAnswerRight: true, TimeMillis: 20, CreatedAtMillis: 1}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsAnswerRight)
	assert.Equal(t, int64(20), all[0].TimeMillis)
}

func TestRecordSave_Empty(t *testing.T) {
	repo := openTestStore(t).RecordRepo()
	assert.NoError(t, repo.Save(context.Background()))
}

func TestRecordReset(t *testing.T) {
	repo := openTestStore(t).RecordRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx,
		Record{ID: "1", QuestionType: "mul", FormattedBody: "2 * 2 = ?"},
		Record{ID: "2", QuestionType: "mul", FormattedBody: "3 * 3 = ?"},
	))

	n, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordRepo().Save(ctx, Record{ID: "keep", QuestionType: "div", FormattedBody: "7 div 2 = ?"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	all, err := s.RecordRepo().All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].ID)
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "drill.db")
	t.Setenv("MATHDRILL_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHDRILL_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathdrill", "mathdrill.db"), got)
}
