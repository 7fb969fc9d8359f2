// Package jira implements the Jira issue source.
//
// It speaks both search API generations: v2 (offset pagination via
// startAt/total) and v3 (token pagination via nextPageToken/isLast).
// The difference is confined to the request URL and the cursor variant;
// callers see a single Search capability.
//
// The client absorbs transient transport faults below the orchestrator:
// bounded retries with exponential backoff on 429 and 5xx responses, a
// client-side rate limiter, and a fixed per-request deadline.
package jira
