package driven

import (
	"context"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

// IssueSource fetches one page of issues matching a filter query.
// Pagination parameters are set on the request by a PageCursor; the
// source fills the response metadata for whichever protocol it speaks.
type IssueSource interface {
	// Search returns the next page of issues for the request.
	Search(ctx context.Context, req SearchRequest) (*SearchPage, error)
}

// SearchRequest carries the query and pagination state for one page fetch.
type SearchRequest struct {
	// JQL is the filter query selecting which issues to retrieve.
	JQL string

	// MaxResults is the page size.
	MaxResults int

	// StartAt is the offset-based position (API v2).
	StartAt int

	// PageToken is the continuation token (API v3). Empty on the first page.
	PageToken string
}

// SearchPage is one page of results plus pagination metadata.
// Total is meaningful for offset pagination; IsLast and NextPageToken
// for token pagination.
type SearchPage struct {
	Issues        []domain.Issue
	Total         int
	IsLast        bool
	NextPageToken string
}

// PageCursor tracks progress through a paginated result set.
// The two variants (offset and token) are selected once at configuration
// time; the orchestrator never branches on the protocol itself.
type PageCursor interface {
	// Apply sets the cursor's pagination parameters on a page request.
	Apply(req *SearchRequest)

	// Advance consumes a page response and reports whether the result
	// set is exhausted.
	Advance(page *SearchPage) bool

	// Encode serialises the cursor state for persistence.
	Encode() string
}
