package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ics-audit/roledep/pkg/config"
	"ics-audit/roledep/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "roledep",
	Short: "Idle-role resource-policy dependency reports for Connect Secure exports",
	Long: `roledep cross-references idle user roles against the resource policies of a
Connect Secure XML configuration export and writes one CSV report per policy
group (web, file, SAM, terminal services, HTML5, VPN tunneling).

Each report lists, per idle role, every policy that still references the role,
so stale roles can be unwired from policies before removal.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "roledep.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file when present and falls back to
// defaults when the default config path does not exist. An explicitly given
// path must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config file %q: %w", cfgFile, err)
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// newLogger builds the process logger from configuration; --verbose forces
// debug level.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: cfg.Telemetry.Logging.Format,
	})
}
