// Package cli provides shared helpers for command output formatting.
package cli
