package config

import "time"

// DefaultConfig returns a configuration populated with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.History.Enabled = true
	return cfg
}

// ApplyDefaults fills unset fields with default values. Boolean fields keep
// their zero value here since YAML cannot distinguish "false" from "unset";
// DefaultConfig sets their defaults for file-less startup.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "reports"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "roledep-history.db"
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = 90
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.MetricsListenAddress == "" {
		cfg.Watch.MetricsListenAddress = "127.0.0.1:9477"
	}
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "text"
	}
}
