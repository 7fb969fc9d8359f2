package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentNode_UnmarshalJSON_Object(t *testing.T) {
	data := []byte(`{
		"type": "doc",
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "hello"}]}
		]
	}`)

	var node ContentNode
	require.NoError(t, json.Unmarshal(data, &node))

	assert.Equal(t, NodeDoc, node.Type)
	require.Len(t, node.Content, 1)
	require.Len(t, node.Content[0].Content, 1)
	assert.Equal(t, "hello", node.Content[0].Content[0].Text)
}

func TestContentNode_UnmarshalJSON_BareString(t *testing.T) {
	var node ContentNode
	require.NoError(t, json.Unmarshal([]byte(`"plain v2 description"`), &node))

	assert.Equal(t, NodeText, node.Type)
	assert.Equal(t, "plain v2 description", node.Text)
	assert.Empty(t, node.Content)
}

func TestContentNode_UnmarshalJSON_InlineCardAttrs(t *testing.T) {
	data := []byte(`{"type": "inlineCard", "attrs": {"url": "https://example.com/page"}}`)

	var node ContentNode
	require.NoError(t, json.Unmarshal(data, &node))

	assert.Equal(t, NodeInlineCard, node.Type)
	assert.Equal(t, "https://example.com/page", node.Attrs.URL)
}

func TestContentNode_UnmarshalJSON_UnknownTypePreserved(t *testing.T) {
	data := []byte(`{"type": "mediaGroup", "content": [{"type": "text", "text": "x"}]}`)

	var node ContentNode
	require.NoError(t, json.Unmarshal(data, &node))

	assert.Equal(t, "mediaGroup", node.Type)
	require.Len(t, node.Content, 1)
}
