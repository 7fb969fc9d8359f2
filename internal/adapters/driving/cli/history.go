package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jiravec-cli/internal/adapters/driven/storage/sqlite"
)

var (
	historyLimit   int
	historyDataDir string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent crawl runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20,
		"maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyDataDir, "data-dir", "",
		"history database directory (defaults to ~/.jiravec/data)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(historyDataDir)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  v%d  indexed=%d failed=%d  %s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.APIVersion, run.Indexed, run.Failed, run.JQL)
	}
	return nil
}
