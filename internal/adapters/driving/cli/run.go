package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jiravec-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jiravec-cli/internal/adapters/driven/index/vectara"
	"github.com/custodia-labs/jiravec-cli/internal/adapters/driven/storage/sqlite"
	jiraconn "github.com/custodia-labs/jiravec-cli/internal/connectors/jira"
	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jiravec-cli/internal/core/services"
	jiranorm "github.com/custodia-labs/jiravec-cli/internal/normalisers/jira"
)

var (
	runConfigPath string
	runJQL        string
	runDryRun     bool
	runNoHistory  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Crawl Jira issues and index them",
	Long: `Crawls all issues matching the configured JQL query and submits
each one to the Vectara corpus. Pagination follows the configured
Jira search API version (2 or 3) to completion.`,
	RunE: runCrawl,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "",
		"path to the TOML config file (required)")
	runCmd.Flags().StringVar(&runJQL, "jql", "",
		"override the configured JQL query")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false,
		"map issues to documents without submitting them")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false,
		"do not record this run in the history database")
	runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(runCmd)
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	cfg, err := file.Load(runConfigPath)
	if err != nil {
		return err
	}

	jql := cfg.Jira.JQL
	if runJQL != "" {
		jql = runJQL
	}

	crawler, cleanup, err := buildCrawler(cmd, cfg, runDryRun, !runNoHistory)
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := crawler.Run(cmd.Context(), jql)
	if err != nil {
		cmd.Printf("Crawl stopped early. Indexed %d issues.\n", count)
		return fmt.Errorf("crawl failed: %w", err)
	}

	cmd.Printf("Complete! Indexed %d issues.\n", count)
	return nil
}

// buildCrawler wires the connector, mapper, indexer and run store from
// the configuration bundle. The returned cleanup closes the run store.
func buildCrawler(
	cmd *cobra.Command, cfg *file.Config, dryRun, history bool,
) (*services.Crawler, func(), error) {
	client, err := jiraconn.NewClient(
		cfg.Jira.BaseURL, cfg.Jira.Username, cfg.Jira.APIToken, cfg.Jira.APIVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("create jira client: %w", err)
	}

	var indexer driven.Indexer
	if dryRun {
		indexer = dryRunIndexer{cmd: cmd}
	} else {
		var opts []vectara.Option
		if cfg.Vectara.BaseURL != "" {
			opts = append(opts, vectara.WithBaseURL(cfg.Vectara.BaseURL))
		}
		indexer = vectara.New(cfg.Vectara.APIKey, cfg.Vectara.CorpusKey, opts...)
	}

	crawlOpts := []services.CrawlerOption{services.WithPageSize(cfg.Jira.MaxResults)}
	cleanup := func() {}

	if history {
		store, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			// History is best effort; the crawl still runs.
			cmd.PrintErrf("Run history disabled: %v\n", err)
		} else {
			cleanup = func() { store.Close() }
			crawlOpts = append(crawlOpts, services.WithRunHistory(store, cfg.Jira.APIVersion))
		}
	}

	newCursor := func() driven.PageCursor { return jiraconn.NewCursor(cfg.Jira.APIVersion) }
	mapper := jiranorm.NewMapper(cfg.Jira.BaseURL)

	return services.NewCrawler(client, mapper, indexer, newCursor, crawlOpts...), cleanup, nil
}

// dryRunIndexer reports every document as accepted without submitting it.
type dryRunIndexer struct {
	cmd *cobra.Command
}

func (d dryRunIndexer) Index(_ context.Context, doc domain.Document) (driven.IndexOutcome, error) {
	d.cmd.Printf("dry-run: %s (%s)\n", doc.ID, doc.Title)
	return driven.IndexAccepted, nil
}
