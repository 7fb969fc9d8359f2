// Package domain defines the core business entities for jiravec.
//
// This package is the innermost layer of the hexagonal architecture.
// It defines the fundamental types:
//
//   - Issue: A Jira issue as returned by the search API
//   - ContentNode: One node of an Atlassian Document Format tree
//   - Document: The flattened, indexable representation of one issue
//   - CrawlRun: A record of one completed crawl
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
