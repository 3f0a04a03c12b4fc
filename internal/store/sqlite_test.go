package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standardize-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_CreateAndGetRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "firms.csv", "Firm Name")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "firms.csv", got.Source)
	assert.Equal(t, "Firm Name", got.Column)
}

func TestSQLiteStore_GetRun_NotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.GetRun(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_CompleteRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "firms.csv", "Firm Name")
	require.NoError(t, err)

	err = s.CompleteRun(ctx, run.ID, model.Summary{Total: 10, Matched: 7, Unmatched: 3})
	require.NoError(t, err)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, 10, got.Total)
	assert.Equal(t, 7, got.Matched)
	assert.Equal(t, 3, got.Unmatched)
}

func TestSQLiteStore_CompleteRun_NotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	err := s.CompleteRun(context.Background(), "nonexistent", model.Summary{})
	assert.Error(t, err)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "firms.csv", "Firm Name")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
}

func TestSQLiteStore_ListRuns_StatusFilter(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	r1, err := s.CreateRun(ctx, "a.csv", "Firm Name")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "b.csv", "Firm Name")
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, r1.ID, model.Summary{}))

	complete, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, r1.ID, complete[0].ID)

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteStore_SaveAndListRecords(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "firms.csv", "Firm Name")
	require.NoError(t, err)

	records := []model.Record{
		{Input: "Acme Bank", Standardized: "Acme Corporation"},
		{Input: "Mystery Firm", Standardized: model.Unknown},
	}
	require.NoError(t, s.SaveRecords(ctx, run.ID, records))

	got, err := s.ListRecords(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSQLiteStore_SaveRecords_Empty(t *testing.T) {
	s := newTestSQLiteStore(t)
	assert.NoError(t, s.SaveRecords(context.Background(), "whatever", nil))
}

func TestOpen_SQLiteDefault(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "open.db")
	s, err := Open(context.Background(), Config{Driver: "sqlite", DatabaseURL: dsn})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.ListRuns(context.Background(), RunFilter{})
	assert.NoError(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}
