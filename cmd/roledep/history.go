package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ics-audit/roledep/pkg/cli"
	"ics-audit/roledep/pkg/history"
)

var historyFlags struct {
	limit  int
	format string
	prune  bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded report generation runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum runs to list")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
	historyCmd.Flags().BoolVar(&historyFlags.prune, "prune", false, "delete runs older than the configured retention")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	formatter, err := cli.NewFormatter(historyFlags.format)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyFlags.prune {
		retention := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
		if retention <= 0 {
			return fmt.Errorf("history.retention_days is not set, nothing to prune against")
		}
		deleted, err := store.Prune(cmd.Context(), retention)
		if err != nil {
			return err
		}
		fmt.Printf("pruned %d runs\n", deleted)
	}

	runs, err := store.List(cmd.Context(), historyFlags.limit)
	if err != nil {
		return err
	}

	if historyFlags.format == "json" {
		return formatter.FormatTo(os.Stdout, runs)
	}
	return formatter.FormatTo(os.Stdout, renderHistoryText(runs))
}

// renderHistoryText formats runs as one line each, newest first.
func renderHistoryText(runs []*history.Run) string {
	if len(runs) == 0 {
		return "no recorded runs"
	}
	var b strings.Builder
	for _, run := range runs {
		fmt.Fprintf(&b, "%s  %-9s %-7s policies=%-4d rows=%-4d %s",
			run.StartedAt.Format(time.RFC3339), run.Group, run.Status,
			run.Policies, run.Rows, run.OutputPath)
		if run.Error != "" {
			fmt.Fprintf(&b, "  (%s)", run.Error)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
