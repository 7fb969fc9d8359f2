package jira

import (
	"encoding/base64"
	"encoding/json"

	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jiravec-cli/internal/logger"
)

// CursorVersion is the current cursor schema version.
const CursorVersion = 1

// Cursor mode identifiers used in the encoded form.
const (
	modeOffset = "offset"
	modeToken  = "token"
)

// Ensure both variants implement the port.
var (
	_ driven.PageCursor = (*OffsetCursor)(nil)
	_ driven.PageCursor = (*TokenCursor)(nil)
)

// NewCursor returns the cursor variant for a search API version:
// offset-based for v2, token-based for v3 and later.
func NewCursor(apiVersion int) driven.PageCursor {
	if apiVersion == 2 {
		return &OffsetCursor{}
	}
	return &TokenCursor{}
}

// OffsetCursor drives API v2 pagination: a running offset checked
// against the total the server reports with each page.
type OffsetCursor struct {
	StartAt int `json:"start_at"`
	Total   int `json:"total"`
}

// Apply sets the offset on a page request.
func (c *OffsetCursor) Apply(req *driven.SearchRequest) {
	req.StartAt = c.StartAt
}

// Advance moves the offset past the returned issues and reports whether
// the server's total has been reached.
func (c *OffsetCursor) Advance(page *driven.SearchPage) bool {
	c.StartAt += len(page.Issues)
	c.Total = page.Total
	return c.StartAt >= c.Total
}

// Encode serialises the cursor to a base64-encoded JSON envelope.
func (c *OffsetCursor) Encode() string {
	return encodeEnvelope(cursorEnvelope{Version: CursorVersion, Mode: modeOffset, Offset: c})
}

// TokenCursor drives API v3 pagination: an opaque continuation token and
// the server's last-page flag.
type TokenCursor struct {
	Token string `json:"token"`
	Last  bool   `json:"last"`
}

// Apply sets the continuation token on a page request. The first page
// carries no token.
func (c *TokenCursor) Apply(req *driven.SearchRequest) {
	req.PageToken = c.Token
}

// Advance consumes the page's continuation metadata. A response that is
// not last yet carries no token violates the upstream protocol; it is
// treated as end-of-stream rather than an error.
func (c *TokenCursor) Advance(page *driven.SearchPage) bool {
	if page.IsLast {
		c.Last = true
		return true
	}
	if page.NextPageToken == "" {
		logger.Debug("Page not marked last but carries no continuation token; treating as end of stream")
		return true
	}
	c.Token = page.NextPageToken
	return false
}

// Encode serialises the cursor to a base64-encoded JSON envelope.
func (c *TokenCursor) Encode() string {
	return encodeEnvelope(cursorEnvelope{Version: CursorVersion, Mode: modeToken, Token: c})
}

// cursorEnvelope is the stored form shared by both variants.
type cursorEnvelope struct {
	Version int           `json:"v"`
	Mode    string        `json:"mode"`
	Offset  *OffsetCursor `json:"offset,omitempty"`
	Token   *TokenCursor  `json:"token,omitempty"`
}

func encodeEnvelope(env cursorEnvelope) string {
	data, err := json.Marshal(env)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeCursor deserialises a cursor from its encoded form.
// Returns nil for an empty string so callers can fall back to NewCursor.
func DecodeCursor(s string) (driven.PageCursor, error) {
	if s == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var env cursorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrInvalidCursor
	}
	if env.Version > CursorVersion {
		return nil, ErrInvalidCursor
	}

	switch {
	case env.Mode == modeOffset && env.Offset != nil:
		return env.Offset, nil
	case env.Mode == modeToken && env.Token != nil:
		return env.Token, nil
	default:
		return nil, ErrInvalidCursor
	}
}
