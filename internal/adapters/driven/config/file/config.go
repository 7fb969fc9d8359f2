package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when the config file omits optional fields.
const (
	DefaultAPIVersion = 3
	DefaultMaxResults = 100
)

// ErrMissingField indicates a required configuration field is absent.
var ErrMissingField = errors.New("missing required field")

// Config is the full configuration bundle, consumed once at startup.
type Config struct {
	Jira    JiraConfig    `toml:"jira"`
	Vectara VectaraConfig `toml:"vectara"`

	// DataDir overrides the run history location. Empty means the
	// default under the user's home directory.
	DataDir string `toml:"data_dir"`
}

// JiraConfig configures the issue source.
type JiraConfig struct {
	// BaseURL is the Jira site, e.g. https://your-domain.atlassian.net.
	BaseURL string `toml:"base_url"`

	// Username and APIToken form the basic-auth credential pair.
	Username string `toml:"username"`
	APIToken string `toml:"api_token"`

	// JQL selects which issues to crawl.
	JQL string `toml:"jql"`

	// APIVersion selects the search API generation (2 or 3).
	APIVersion int `toml:"api_version"`

	// MaxResults is the page size.
	MaxResults int `toml:"max_results"`
}

// VectaraConfig configures the index destination.
type VectaraConfig struct {
	APIKey    string `toml:"api_key"`
	CorpusKey string `toml:"corpus_key"`

	// BaseURL overrides the API endpoint. Empty means the public API.
	BaseURL string `toml:"base_url"`
}

// Load reads, parses and validates a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Jira.APIVersion == 0 {
		c.Jira.APIVersion = DefaultAPIVersion
	}
	if c.Jira.MaxResults == 0 {
		c.Jira.MaxResults = DefaultMaxResults
	}
}

// Validate checks the required fields and value ranges.
func (c *Config) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{c.Jira.BaseURL, "jira.base_url"},
		{c.Jira.Username, "jira.username"},
		{c.Jira.APIToken, "jira.api_token"},
		{c.Jira.JQL, "jira.jql"},
		{c.Vectara.APIKey, "vectara.api_key"},
		{c.Vectara.CorpusKey, "vectara.corpus_key"},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	if c.Jira.APIVersion != 2 && c.Jira.APIVersion != 3 {
		return fmt.Errorf("jira.api_version must be 2 or 3, got %d", c.Jira.APIVersion)
	}
	if c.Jira.MaxResults < 0 {
		return fmt.Errorf("jira.max_results must be positive, got %d", c.Jira.MaxResults)
	}
	return nil
}
