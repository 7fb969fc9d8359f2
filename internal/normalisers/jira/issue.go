package jira

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
)

// SourceTag is the constant metadata tag marking document provenance.
const SourceTag = "jira"

// Ensure Mapper implements the interface.
var _ driven.DocumentMapper = (*Mapper)(nil)

// Mapper flattens Jira issues into indexable documents.
type Mapper struct {
	baseURL string
}

// NewMapper creates a mapper that builds browse URLs against baseURL.
func NewMapper(baseURL string) *Mapper {
	return &Mapper{baseURL: strings.TrimRight(baseURL, "/")}
}

// Map converts one issue into a document. It is pure and total; issues
// with missing fields still map, with the placeholders the sections
// require.
func (m *Mapper) Map(issue domain.Issue) domain.Document {
	fields := issue.Fields

	metadata := map[string]any{
		"source": SourceTag,
		"url":    fmt.Sprintf("%s/browse/%s", m.baseURL, issue.Key),
	}
	if fields.Project != nil {
		metadata["project"] = fields.Project.Name
	}
	if fields.IssueType != nil {
		metadata["issueType"] = fields.IssueType.Name
	}
	if fields.Status != nil {
		metadata["status"] = fields.Status.Name
	}
	if fields.Priority != nil {
		metadata["priority"] = fields.Priority.Name
	}
	if fields.Reporter != nil {
		metadata["reporter"] = fields.Reporter.DisplayName
	}
	if fields.Assignee != nil {
		metadata["assignee"] = fields.Assignee.DisplayName
	}
	if fields.Created != "" {
		metadata["created"] = fields.Created
	}
	if fields.Updated != "" {
		metadata["last_updated"] = fields.Updated
	}
	if fields.ResolutionDate != "" {
		metadata["resolved"] = fields.ResolutionDate
	}
	if len(fields.Labels) > 0 {
		metadata["labels"] = fields.Labels
	}

	description := ExtractText(fields.Description)
	if strings.TrimSpace(description) == "" {
		description = fmt.Sprintf("Issue: %s", issue.Key)
	}

	title := fields.Summary
	if title == "" {
		title = issue.Key
	}

	status := "Unknown"
	if fields.Status != nil && fields.Status.Name != "" {
		status = fields.Status.Name
	}

	return domain.Document{
		ID:       issue.Key,
		Title:    title,
		Metadata: metadata,
		Sections: []domain.Section{
			{Title: "Description", Text: description},
			{Title: "Comments", Text: renderComments(fields.Comment.Comments)},
			{Title: "Status", Text: fmt.Sprintf("Issue %s is %s", title, status)},
		},
	}
}

// renderComments flattens comments in source order. Comments whose bodies
// decode to blank text are dropped.
func renderComments(comments []domain.Comment) string {
	rendered := make([]string, 0, len(comments))
	for _, comment := range comments {
		body := strings.TrimSpace(ExtractText(comment.Body))
		if body == "" {
			continue
		}

		author := "Unknown"
		if comment.Author != nil && comment.Author.DisplayName != "" {
			author = comment.Author.DisplayName
		}
		rendered = append(rendered, fmt.Sprintf("%s: %s", author, body))
	}

	if len(rendered) == 0 {
		return "No comments"
	}
	return strings.Join(rendered, "\n\n")
}
