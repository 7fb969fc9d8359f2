package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jiravec-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_Short(t *testing.T) {
	assert.Equal(t, "List recent crawl runs", historyCmd.Short)
}

func TestHistoryCmd_Empty(t *testing.T) {
	cleanup := setupHistoryTest(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "--data-dir", t.TempDir()})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No runs recorded.")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	cleanup := setupHistoryTest(t)
	defer cleanup()

	dataDir := t.TempDir()
	seedRun(t, dataDir, domain.CrawlRun{
		ID:         uuid.NewString(),
		JQL:        "project = PROJ",
		APIVersion: 3,
		Indexed:    12,
		Failed:     1,
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "--data-dir", dataDir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "v3")
	assert.Contains(t, buf.String(), "indexed=12")
	assert.Contains(t, buf.String(), "failed=1")
	assert.Contains(t, buf.String(), "project = PROJ")
}

func TestHistoryCmd_HonoursLimit(t *testing.T) {
	cleanup := setupHistoryTest(t)
	defer cleanup()

	dataDir := t.TempDir()
	for i := 0; i < 3; i++ {
		seedRun(t, dataDir, domain.CrawlRun{
			ID:         uuid.NewString(),
			JQL:        "project = PROJ",
			APIVersion: 2,
			Indexed:    i,
			StartedAt:  time.Now().Add(time.Duration(i) * time.Second),
			FinishedAt: time.Now().Add(time.Duration(i+1) * time.Second),
		})
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "--data-dir", dataDir, "--limit", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "indexed=2")
	assert.NotContains(t, buf.String(), "indexed=0")
}

func setupHistoryTest(t *testing.T) func() {
	t.Helper()
	oldLimit, oldDataDir := historyLimit, historyDataDir
	return func() {
		historyLimit, historyDataDir = oldLimit, oldDataDir
	}
}

func seedRun(t *testing.T, dataDir string, run domain.CrawlRun) {
	t.Helper()
	store, err := sqlite.NewStore(dataDir)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.SaveRun(context.Background(), run))
}
