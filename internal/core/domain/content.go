package domain

import "encoding/json"

// Known ADF node types. Anything outside this set is handled by the
// generic fallback in the text extractor.
const (
	NodeDoc         = "doc"
	NodeParagraph   = "paragraph"
	NodeHeading     = "heading"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeCodeBlock   = "codeBlock"
	NodeInlineCard  = "inlineCard"
	NodeText        = "text"
)

// ContentNode is one element of an Atlassian Document Format tree.
// A node is either a text leaf, a typed block/inline element with an
// ordered child sequence, or an unrecognised type carried as-is.
type ContentNode struct {
	Type    string        `json:"type"`
	Text    string        `json:"text,omitempty"`
	Attrs   ContentAttrs  `json:"attrs,omitempty"`
	Content []ContentNode `json:"content,omitempty"`
}

// ContentAttrs holds the node attributes the extractor cares about.
type ContentAttrs struct {
	URL string `json:"url,omitempty"`
}

// UnmarshalJSON accepts either an ADF object or a bare string.
// Jira API v2 returns descriptions and comment bodies as plain strings;
// those decode into a text leaf so the extractor handles both shapes.
func (n *ContentNode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = ContentNode{Type: NodeText, Text: s}
		return nil
	}

	type alias ContentNode
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*n = ContentNode(a)
	return nil
}
