package domain

// Document is the flattened, indexable representation of one issue.
// It is built fresh per issue and has no identity beyond submission.
type Document struct {
	// ID is the unique identifier, the issue key.
	ID string

	// Title is the human-readable title. Optional.
	Title string

	// Metadata contains key-value pairs; values are strings except
	// labels, which stay a string slice.
	Metadata map[string]any

	// Sections are the ordered named text blocks of the document.
	Sections []Section
}

// Section is one named text block within a document.
type Section struct {
	Title string
	Text  string
}
