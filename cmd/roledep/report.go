package main

import (
	"github.com/spf13/cobra"

	"ics-audit/roledep/pkg/config"
	"ics-audit/roledep/pkg/history"
	"ics-audit/roledep/pkg/report"
	"ics-audit/roledep/pkg/telemetry/logging"
)

var reportFlags struct {
	export    string
	rolesFile string
	roles     []string
	outDir    string
	groups    []string
	noHistory bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate dependency reports",
	Long: `Generate one CSV report per policy group, listing for each idle role the
policies that reference it.

Examples:
  # All groups, roles from a file
  roledep report --export system-export.xml --roles-file idle-roles.txt

  # Selected groups, roles inline
  roledep report --export system-export.xml --role "Legacy Role" --group web --group file`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFlags.export, "export", "e", "", "configuration export XML file")
	reportCmd.Flags().StringVar(&reportFlags.rolesFile, "roles-file", "", "idle-roles file, one role per line")
	reportCmd.Flags().StringArrayVar(&reportFlags.roles, "role", nil, "idle role name (repeatable)")
	reportCmd.Flags().StringVarP(&reportFlags.outDir, "out-dir", "o", "", "report output directory")
	reportCmd.Flags().StringArrayVarP(&reportFlags.groups, "group", "g", nil, "report group to generate (repeatable; default all)")
	reportCmd.Flags().BoolVar(&reportFlags.noHistory, "no-history", false, "skip run-history recording")
}

// applyReportFlags merges report command flags over the loaded configuration.
func applyReportFlags(cfg *config.Config) {
	if reportFlags.export != "" {
		cfg.Export.Path = reportFlags.export
	}
	if reportFlags.rolesFile != "" {
		cfg.Roles.File = reportFlags.rolesFile
	}
	if len(reportFlags.roles) > 0 {
		cfg.Roles.Names = append(cfg.Roles.Names, reportFlags.roles...)
	}
	if reportFlags.outDir != "" {
		cfg.Output.Dir = reportFlags.outDir
	}
	if len(reportFlags.groups) > 0 {
		cfg.Output.Groups = reportFlags.groups
	}
	if reportFlags.noHistory {
		cfg.History.Enabled = false
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyReportFlags(cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	idleRoles, err := report.LoadIdleRoles(cfg.Roles)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	logger.Info("generating reports",
		"export", cfg.Export.Path,
		"idle_roles", len(idleRoles),
		"out_dir", cfg.Output.Dir,
	)

	runner := report.NewRunner(cfg, idleRoles, logging.Component(logger, "report"), store, nil)
	return runner.Run(cmd.Context())
}
