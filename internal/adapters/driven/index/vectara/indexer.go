package vectara

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jiravec-cli/internal/logger"
)

const (
	// DefaultBaseURL is the Vectara API endpoint.
	DefaultBaseURL = "https://api.vectara.io"

	// DefaultTimeout is the per-request deadline.
	DefaultTimeout = 30 * time.Second
)

// Ensure Indexer implements the port.
var _ driven.Indexer = (*Indexer)(nil)

// Indexer submits structured documents to a Vectara corpus.
type Indexer struct {
	baseURL    string
	apiKey     string
	corpusKey  string
	httpClient *http.Client
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithBaseURL overrides the API endpoint. Useful for tests.
func WithBaseURL(u string) Option {
	return func(ix *Indexer) { ix.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(ix *Indexer) { ix.httpClient = hc }
}

// New creates an indexer for the given corpus.
func New(apiKey, corpusKey string, opts ...Option) *Indexer {
	ix := &Indexer{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		corpusKey:  corpusKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// documentPayload is the Vectara v2 structured document shape.
type documentPayload struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Title    string           `json:"title,omitempty"`
	Metadata map[string]any   `json:"metadata"`
	Sections []sectionPayload `json:"sections"`
}

type sectionPayload struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Index submits one document. A 409 (duplicate ID) maps to
// IndexAlreadyExists and is success for the caller; any other non-2xx
// status maps to IndexRejected without an error, leaving transport
// faults as the only error case.
func (ix *Indexer) Index(ctx context.Context, doc domain.Document) (driven.IndexOutcome, error) {
	payload := documentPayload{
		ID:       doc.ID,
		Type:     "structured",
		Title:    doc.Title,
		Metadata: doc.Metadata,
		Sections: make([]sectionPayload, 0, len(doc.Sections)),
	}
	if payload.Metadata == nil {
		payload.Metadata = map[string]any{}
	}
	for _, section := range doc.Sections {
		payload.Sections = append(payload.Sections, sectionPayload{
			Title: section.Title,
			Text:  section.Text,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return driven.IndexRejected, fmt.Errorf("encode document %s: %w", doc.ID, err)
	}

	endpoint := fmt.Sprintf("%s/v2/corpora/%s/documents", ix.baseURL, ix.corpusKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return driven.IndexRejected, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", ix.apiKey)

	resp, err := ix.httpClient.Do(req)
	if err != nil {
		return driven.IndexRejected, fmt.Errorf("index document %s: %w", doc.ID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusCreated:
		return driven.IndexAccepted, nil
	case resp.StatusCode == http.StatusConflict:
		logger.Debug("Document already exists: %s", doc.ID)
		return driven.IndexAlreadyExists, nil
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Warn("Failed to index document %s: %d - %s",
			doc.ID, resp.StatusCode, strings.TrimSpace(string(detail)))
		return driven.IndexRejected, nil
	}
}
