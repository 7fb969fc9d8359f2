package driven

import (
	"context"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

// IndexOutcome is the result of submitting one document to the index.
type IndexOutcome int

const (
	// IndexAccepted means the document was stored.
	IndexAccepted IndexOutcome = iota

	// IndexAlreadyExists means a document with the same ID is already
	// present. Treated as success by the orchestrator.
	IndexAlreadyExists

	// IndexRejected means the index refused the document. Fails that
	// issue only; the crawl continues.
	IndexRejected
)

// String returns a human-readable outcome name for logging.
func (o IndexOutcome) String() string {
	switch o {
	case IndexAccepted:
		return "accepted"
	case IndexAlreadyExists:
		return "already exists"
	case IndexRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Indexer submits flattened documents to the search index.
type Indexer interface {
	// Index stores a document. A non-nil error indicates a transport
	// failure; a Rejected outcome with nil error indicates the index
	// refused the document.
	Index(ctx context.Context, doc domain.Document) (IndexOutcome, error)
}

// DocumentMapper flattens an issue into an indexable document.
// Implementations must be pure and total: any issue maps to a document.
type DocumentMapper interface {
	Map(issue domain.Issue) domain.Document
}
