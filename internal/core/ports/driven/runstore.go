package driven

import (
	"context"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

// RunStore persists crawl run history.
type RunStore interface {
	// SaveRun records a completed run.
	SaveRun(ctx context.Context, run domain.CrawlRun) error

	// ListRuns returns up to limit runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.CrawlRun, error)

	// Close releases resources.
	Close() error
}
