// Package cli implements the jiravec command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/jiravec-cli/internal/logger"
)

// version is set by Execute before the command tree runs.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "jiravec",
	Short: "Ingest Jira issues into Vectara",
	Long: `jiravec crawls Jira issues selected by a JQL query, flattens each
issue's rich-text fields into a plain-text document, and indexes the
documents into a Vectara corpus.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
