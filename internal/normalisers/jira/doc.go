// Package jira flattens Jira issues into indexable documents.
//
// It has two halves: ExtractText, a total recursive decoder from
// Atlassian Document Format trees to plain text, and Mapper, which
// assembles an issue's metadata, description, comments and status into
// the sections of a domain.Document.
package jira
