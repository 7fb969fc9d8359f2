package jira

import (
	"strings"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

// ExtractText flattens an Atlassian Document Format tree into plain text.
// It is total: any input, including nil, unknown node types, and
// arbitrarily deep nesting, yields a string without error.
func ExtractText(node *domain.ContentNode) string {
	if node == nil {
		return ""
	}

	switch node.Type {
	case domain.NodeText:
		return node.Text

	case domain.NodeParagraph, domain.NodeHeading:
		return ExtractAll(node.Content) + "\n\n"

	case domain.NodeBulletList, domain.NodeOrderedList:
		items := make([]string, 0, len(node.Content))
		for i := range node.Content {
			items = append(items, "• "+strings.TrimSpace(ExtractText(&node.Content[i])))
		}
		return strings.Join(items, "\n") + "\n\n"

	case domain.NodeListItem:
		return ExtractAll(node.Content)

	case domain.NodeCodeBlock:
		return "[CODE: " + ExtractAll(node.Content) + "]\n\n"

	case domain.NodeInlineCard:
		if node.Attrs.URL == "" {
			return ""
		}
		return "[" + node.Attrs.URL + "] "

	case domain.NodeDoc:
		return ExtractAll(node.Content)

	default:
		// Unrecognised node types degrade to their children, or to
		// nothing when they have none.
		return ExtractAll(node.Content)
	}
}

// ExtractAll flattens an ordered node sequence by concatenation.
func ExtractAll(nodes []domain.ContentNode) string {
	if len(nodes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := range nodes {
		sb.WriteString(ExtractText(&nodes[i]))
	}
	return sb.String()
}
