// Package logging provides structured logging built on log/slog.
//
// It translates the telemetry.logging configuration section into a configured
// slog.Logger (level and format parsing, writer selection) and establishes
// the component-tagging convention used by every package:
//
//	logger := logging.Component(base, "report")
//	logger.Info("report written", "group", "web", "rows", 42)
package logging
