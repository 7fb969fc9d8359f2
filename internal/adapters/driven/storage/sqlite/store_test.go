package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.CrawlRun{
		ID:         uuid.NewString(),
		JQL:        "project = PROJ",
		APIVersion: 3,
		Indexed:    42,
		Failed:     1,
		Cursor:     "abc123",
		StartedAt:  time.Now().Add(-time.Minute).UTC().Truncate(time.Millisecond),
		FinishedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.JQL, got.JQL)
	assert.Equal(t, 3, got.APIVersion)
	assert.Equal(t, 42, got.Indexed)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, "abc123", got.Cursor)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
	assert.True(t, got.FinishedAt.Equal(run.FinishedAt))
}

func TestStore_ListRuns_MostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveRun(ctx, domain.CrawlRun{
			ID:         uuid.NewString(),
			JQL:        "q",
			APIVersion: 2,
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
		}))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
}

func TestStore_ListRuns_Empty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening applies no migration twice.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
