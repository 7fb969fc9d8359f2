// Package connectors holds the issue source implementations. Each
// connector speaks one tracker's API and implements the IssueSource
// port; jira is currently the only one.
package connectors
