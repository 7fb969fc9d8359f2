package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrIndexerUnavailable indicates the indexing service is not configured.
	ErrIndexerUnavailable = errors.New("indexer unavailable")

	// ErrSourceUnavailable indicates the issue source is not configured.
	ErrSourceUnavailable = errors.New("issue source unavailable")
)
