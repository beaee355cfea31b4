package config

import "time"

// Config is the root configuration structure for roledep.
type Config struct {
	// Export contains the configuration-export input settings.
	Export ExportConfig `yaml:"export"`

	// Roles describes where the idle user roles come from.
	Roles RolesConfig `yaml:"roles"`

	// Output controls where reports are written and which groups run.
	Output OutputConfig `yaml:"output"`

	// History configures the SQLite run-history store.
	History HistoryConfig `yaml:"history"`

	// Watch configures watch mode (regenerate on change / on schedule).
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains observability configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ExportConfig describes the XML configuration export to read.
type ExportConfig struct {
	// Path is the location of the exported configuration XML file.
	Path string `yaml:"path"`
}

// RolesConfig describes the idle user roles of interest.
type RolesConfig struct {
	// File is a text file with one role name per line. Blank lines and
	// lines starting with '#' are skipped.
	File string `yaml:"file"`

	// Names lists idle roles inline; merged with the file's contents.
	Names []string `yaml:"names"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	// Dir is the directory reports are written into.
	// Default: "reports"
	Dir string `yaml:"dir"`

	// Groups restricts which report groups run. Empty means all groups
	// (web, file, sam, termserv, html5, vpntunnel).
	Groups []string `yaml:"groups"`
}

// HistoryConfig configures the run-history store.
type HistoryConfig struct {
	// Enabled turns run-history recording on.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	// Default: "roledep-history.db"
	Path string `yaml:"path"`

	// RetentionDays is how long run records are kept. Zero disables
	// pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file change before reports are
	// regenerated, absorbing editor write bursts.
	// Default: 500ms
	Debounce time.Duration `yaml:"debounce"`

	// Schedule is an optional cron expression for periodic regeneration
	// independent of file changes (e.g. "0 6 * * *"). Empty disables it.
	Schedule string `yaml:"schedule"`

	// MetricsListenAddress is the address the Prometheus metrics endpoint
	// listens on while watch mode runs. Empty disables the endpoint.
	// Default: "127.0.0.1:9477"
	MetricsListenAddress string `yaml:"metrics_listen_address"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	// Default: "text"
	Format string `yaml:"format"`
}
