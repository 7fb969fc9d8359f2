// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - IssueSource: Fetches pages of issues from the tracker
//   - DocumentMapper: Flattens an issue into an indexable document
//   - Indexer: Submits documents to the search index
//   - RunStore: Run history persistence (optional; nil disables history)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
