package jira

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
)

func text(s string) domain.ContentNode {
	return domain.ContentNode{Type: domain.NodeText, Text: s}
}

func TestExtractText_Nil(t *testing.T) {
	assert.Equal(t, "", ExtractText(nil))
}

func TestExtractText_TextLeaf(t *testing.T) {
	node := text("hello")
	assert.Equal(t, "hello", ExtractText(&node))

	empty := domain.ContentNode{Type: domain.NodeText}
	assert.Equal(t, "", ExtractText(&empty))
}

func TestExtractText_Paragraph(t *testing.T) {
	node := domain.ContentNode{
		Type:    domain.NodeParagraph,
		Content: []domain.ContentNode{text("a"), text("b")},
	}
	assert.Equal(t, "ab\n\n", ExtractText(&node))
}

func TestExtractText_Heading(t *testing.T) {
	node := domain.ContentNode{
		Type:    domain.NodeHeading,
		Content: []domain.ContentNode{text("Title")},
	}
	assert.Equal(t, "Title\n\n", ExtractText(&node))
}

func TestExtractText_BulletList(t *testing.T) {
	node := domain.ContentNode{
		Type: domain.NodeBulletList,
		Content: []domain.ContentNode{
			{Type: domain.NodeListItem, Content: []domain.ContentNode{
				{Type: domain.NodeParagraph, Content: []domain.ContentNode{text("x")}},
			}},
			{Type: domain.NodeListItem, Content: []domain.ContentNode{
				{Type: domain.NodeParagraph, Content: []domain.ContentNode{text("y")}},
			}},
		},
	}
	assert.Equal(t, "• x\n• y\n\n", ExtractText(&node))
}

func TestExtractText_OrderedListSharesBulletGlyph(t *testing.T) {
	node := domain.ContentNode{
		Type: domain.NodeOrderedList,
		Content: []domain.ContentNode{
			{Type: domain.NodeListItem, Content: []domain.ContentNode{text("first")}},
		},
	}
	assert.Equal(t, "• first\n\n", ExtractText(&node))
}

func TestExtractText_CodeBlock(t *testing.T) {
	node := domain.ContentNode{
		Type:    domain.NodeCodeBlock,
		Content: []domain.ContentNode{text("echo hi")},
	}
	assert.Equal(t, "[CODE: echo hi]\n\n", ExtractText(&node))
}

func TestExtractText_InlineCard(t *testing.T) {
	node := domain.ContentNode{
		Type:  domain.NodeInlineCard,
		Attrs: domain.ContentAttrs{URL: "https://example.com"},
	}
	assert.Equal(t, "[https://example.com] ", ExtractText(&node))

	bare := domain.ContentNode{Type: domain.NodeInlineCard}
	assert.Equal(t, "", ExtractText(&bare))
}

func TestExtractText_Doc(t *testing.T) {
	node := domain.ContentNode{
		Type: domain.NodeDoc,
		Content: []domain.ContentNode{
			{Type: domain.NodeParagraph, Content: []domain.ContentNode{text("a")}},
			{Type: domain.NodeParagraph, Content: []domain.ContentNode{text("b")}},
		},
	}
	assert.Equal(t, "a\n\nb\n\n", ExtractText(&node))
}

func TestExtractText_UnknownTypeWithContent(t *testing.T) {
	node := domain.ContentNode{
		Type:    "panel",
		Content: []domain.ContentNode{text("inside")},
	}
	assert.Equal(t, "inside", ExtractText(&node))
}

func TestExtractText_UnknownTypeWithoutContent(t *testing.T) {
	node := domain.ContentNode{Type: "rule"}
	assert.Equal(t, "", ExtractText(&node))
}

func TestExtractText_DeepNesting(t *testing.T) {
	// 500 nested unknown wrappers around one text leaf. The decoder
	// must not assume a depth bound.
	node := text("deep")
	for range 500 {
		node = domain.ContentNode{Type: "wrapper", Content: []domain.ContentNode{node}}
	}
	assert.Equal(t, "deep", ExtractText(&node))
}

func TestExtractAll(t *testing.T) {
	assert.Equal(t, "", ExtractAll(nil))
	assert.Equal(t, "ab", ExtractAll([]domain.ContentNode{text("a"), text("b")}))
}

func TestExtractText_MixedDocument(t *testing.T) {
	node := domain.ContentNode{
		Type: domain.NodeDoc,
		Content: []domain.ContentNode{
			{Type: domain.NodeHeading, Content: []domain.ContentNode{text("Steps")}},
			{Type: domain.NodeBulletList, Content: []domain.ContentNode{
				{Type: domain.NodeListItem, Content: []domain.ContentNode{text(" trim me ")}},
			}},
			{Type: domain.NodeCodeBlock, Content: []domain.ContentNode{text("go test")}},
		},
	}

	got := ExtractText(&node)
	assert.True(t, strings.HasPrefix(got, "Steps\n\n"))
	assert.Contains(t, got, "• trim me\n\n")
	assert.Contains(t, got, "[CODE: go test]\n\n")
}
