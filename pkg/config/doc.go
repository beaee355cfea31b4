// Package config provides configuration management for roledep.
//
// Configuration is loaded from a YAML file with optional environment variable
// overrides. Values are applied in order (later overrides earlier):
//
//  1. Default values (defaults.go)
//  2. Values from the YAML file
//  3. ROLEDEP_* environment variable overrides
//  4. Validation (fails fast if invalid)
//
// Environment variables follow the convention ROLEDEP_SECTION_FIELD:
//
//   - ROLEDEP_EXPORT_PATH overrides export.path
//   - ROLEDEP_OUTPUT_DIR overrides output.dir
//   - ROLEDEP_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// A minimal configuration file:
//
//	export:
//	  path: "./system-export.xml"
//
//	roles:
//	  file: "./idle-roles.txt"
//
//	output:
//	  dir: "./reports"
//
//	history:
//	  enabled: true
//	  path: "./roledep-history.db"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "text"
package config
