package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jiravec-cli/internal/logger"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 100

// Crawler pulls issues page by page, flattens each into a document and
// submits it to the index. Strictly sequential: one page in flight at a
// time, one issue at a time, in source order. The crawler owns its
// cursor exclusively and mutates it only between pages.
type Crawler struct {
	source    driven.IssueSource
	mapper    driven.DocumentMapper
	indexer   driven.Indexer
	newCursor func() driven.PageCursor

	runStore   driven.RunStore
	apiVersion int
	pageSize   int
}

// CrawlerOption configures a Crawler.
type CrawlerOption func(*Crawler)

// WithPageSize sets the page size for issue retrieval.
func WithPageSize(n int) CrawlerOption {
	return func(c *Crawler) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithRunHistory enables run recording. apiVersion is stored with each
// run for diagnostics. A save failure is logged, never fatal.
func WithRunHistory(store driven.RunStore, apiVersion int) CrawlerOption {
	return func(c *Crawler) {
		c.runStore = store
		c.apiVersion = apiVersion
	}
}

// NewCrawler creates a crawler. newCursor supplies a fresh pagination
// cursor per run; the variant encodes the offset-vs-token protocol
// choice, made once at configuration time.
func NewCrawler(
	source driven.IssueSource,
	mapper driven.DocumentMapper,
	indexer driven.Indexer,
	newCursor func() driven.PageCursor,
	opts ...CrawlerOption,
) *Crawler {
	c := &Crawler{
		source:    source,
		mapper:    mapper,
		indexer:   indexer,
		newCursor: newCursor,
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run crawls all issues matching jql and returns the count of
// successfully indexed issues. A per-issue fault is logged and skipped;
// a page-fetch fault stops the run and is returned alongside the count
// accumulated so far.
func (c *Crawler) Run(ctx context.Context, jql string) (int, error) {
	if c.source == nil {
		return 0, domain.ErrSourceUnavailable
	}
	if c.indexer == nil {
		return 0, domain.ErrIndexerUnavailable
	}

	logger.Info("Starting crawl with JQL: %s", jql)

	started := time.Now()
	cursor := c.newCursor()

	var indexed, failed int
	var runErr error

	for {
		req := driven.SearchRequest{JQL: jql, MaxResults: c.pageSize}
		cursor.Apply(&req)

		page, err := c.source.Search(ctx, req)
		if err != nil {
			runErr = fmt.Errorf("fetch page: %w", err)
			break
		}

		if len(page.Issues) == 0 {
			logger.Debug("No more issues to process")
			break
		}

		logger.Debug("Processing %d issues", len(page.Issues))
		for _, issue := range page.Issues {
			if c.processIssue(ctx, issue) {
				indexed++
			} else {
				failed++
			}
		}

		if cursor.Advance(page) {
			break
		}
	}

	c.recordRun(ctx, domain.CrawlRun{
		ID:         uuid.NewString(),
		JQL:        jql,
		APIVersion: c.apiVersion,
		Indexed:    indexed,
		Failed:     failed,
		Cursor:     cursor.Encode(),
		StartedAt:  started,
		FinishedAt: time.Now(),
	})

	if runErr != nil {
		logger.Warn("Crawl stopped early after %d issues: %v", indexed, runErr)
	} else {
		logger.Info("Finished crawling. Indexed %d issues (%d failed)", indexed, failed)
	}
	return indexed, runErr
}

// processIssue maps and submits one issue. Failures are isolated: they
// are logged and reported false without affecting the rest of the page.
func (c *Crawler) processIssue(ctx context.Context, issue domain.Issue) bool {
	doc := c.mapper.Map(issue)

	outcome, err := c.indexer.Index(ctx, doc)
	if err != nil {
		logger.Warn("Error indexing issue %s: %v", doc.ID, err)
		return false
	}
	if outcome == driven.IndexRejected {
		logger.Warn("Index rejected issue %s", doc.ID)
		return false
	}

	logger.Debug("Indexed %s (%s)", doc.ID, outcome)
	return true
}

// recordRun saves the run to history when a store is configured.
func (c *Crawler) recordRun(ctx context.Context, run domain.CrawlRun) {
	if c.runStore == nil {
		return
	}
	if err := c.runStore.SaveRun(ctx, run); err != nil {
		logger.Warn("Could not record run %s: %v", run.ID, err)
	}
}
