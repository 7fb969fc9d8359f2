package domain

// Issue is a Jira issue as returned by the search API.
// All fields except Key are optional; pointers mark the fields whose
// absence matters to the document mapping.
type Issue struct {
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the fixed field set requested from the search API.
// Timestamps are carried verbatim as Jira formats them.
type IssueFields struct {
	Summary        string       `json:"summary,omitempty"`
	Project        *NamedEntity `json:"project,omitempty"`
	IssueType      *NamedEntity `json:"issuetype,omitempty"`
	Status         *NamedEntity `json:"status,omitempty"`
	Priority       *NamedEntity `json:"priority,omitempty"`
	Reporter       *User        `json:"reporter,omitempty"`
	Assignee       *User        `json:"assignee,omitempty"`
	Created        string       `json:"created,omitempty"`
	Updated        string       `json:"updated,omitempty"`
	ResolutionDate string       `json:"resolutiondate,omitempty"`
	Labels         []string     `json:"labels,omitempty"`
	Description    *ContentNode `json:"description,omitempty"`
	Comment        CommentBlock `json:"comment,omitempty"`
}

// CommentBlock wraps the comment list the way the Jira API nests it.
type CommentBlock struct {
	Comments []Comment `json:"comments,omitempty"`
}

// Comment is a single issue comment with its rich-text body.
type Comment struct {
	Author *User        `json:"author,omitempty"`
	Body   *ContentNode `json:"body,omitempty"`
}

// NamedEntity is a Jira reference object of which only the name matters
// (project, issue type, status, priority).
type NamedEntity struct {
	Name string `json:"name"`
}

// User is a Jira user reference.
type User struct {
	DisplayName string `json:"displayName"`
}
