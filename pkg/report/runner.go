package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ics-audit/roledep/pkg/config"
	"ics-audit/roledep/pkg/history"
	"ics-audit/roledep/pkg/icsxml"
	"ics-audit/roledep/pkg/rspolicy"
	"ics-audit/roledep/pkg/telemetry/metrics"
)

// Runner generates one CSV report per enabled group from a configuration
// export. The history store and metrics collector are optional; a nil value
// disables that sink.
type Runner struct {
	cfg       *config.Config
	idleRoles rspolicy.RoleSet
	logger    *slog.Logger
	store     *history.Store
	metrics   *metrics.Collector
}

// NewRunner creates a report runner.
func NewRunner(cfg *config.Config, idleRoles rspolicy.RoleSet, logger *slog.Logger, store *history.Store, collector *metrics.Collector) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:       cfg,
		idleRoles: idleRoles,
		logger:    logger.With("component", "report"),
		store:     store,
		metrics:   collector,
	}
}

// groupResult summarizes one group's generation for history and metrics.
type groupResult struct {
	policies int
	rows     int
	maxLen   int
	path     string
	err      error
}

// Run executes a full generation pass: the export is re-read, every enabled
// group is resolved, padded and written. Groups are isolated: a failed write
// is recorded and the pass continues with the next group. The joined error of
// all failed groups is returned at the end.
func (r *Runner) Run(ctx context.Context) error {
	started := time.Now()

	export, err := icsxml.Open(r.cfg.Export.Path, r.logger)
	if err != nil {
		return err
	}

	groups, err := enabledGroups(r.cfg.Output.Groups)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory %q: %w", r.cfg.Output.Dir, err)
	}

	var failures []error
	for _, group := range groups {
		result := r.runGroup(export, group)

		status := "success"
		errMsg := ""
		if result.err != nil {
			status = "error"
			errMsg = result.err.Error()
			failures = append(failures, fmt.Errorf("group %s: %w", group.Name, result.err))
		} else {
			r.logger.Info("report written",
				"group", group.Name,
				"path", result.path,
				"policies", result.policies,
				"rows", result.rows,
			)
		}

		if r.metrics != nil {
			r.metrics.RecordGroup(group.Name, status, result.policies, result.rows)
		}
		if r.store != nil {
			run := &history.Run{
				StartedAt:  started,
				Group:      group.Name,
				Policies:   result.policies,
				Rows:       result.rows,
				MaxLen:     result.maxLen,
				OutputPath: result.path,
				Status:     status,
				Error:      errMsg,
			}
			if err := r.store.Record(ctx, run); err != nil {
				r.logger.Warn("failed to record run", "group", group.Name, "error", err)
			}
		}
	}

	if r.metrics != nil {
		r.metrics.RecordPass(time.Since(started))
	}
	return errors.Join(failures...)
}

// runGroup builds and writes a single group's report. The resolver's observed
// lengths live and die inside this call.
func (r *Runner) runGroup(export *icsxml.Export, group rspolicy.Group) groupResult {
	result := groupResult{
		path: filepath.Join(r.cfg.Output.Dir, group.FileName),
	}

	policies, _ := export.GroupPolicies(group)
	for _, cat := range policies {
		result.policies += len(cat)
	}

	table, lengths := rspolicy.Resolve(group, policies, r.idleRoles)
	table = rspolicy.Pad(table, lengths)
	result.maxLen = table.Depth()
	result.rows = len(table) * result.maxLen

	result.err = rspolicy.WriteFile(result.path, group, table)
	return result
}

// enabledGroups maps configured group names onto report schemas, keeping the
// canonical report order. An empty selection enables all groups.
func enabledGroups(names []string) ([]rspolicy.Group, error) {
	if len(names) == 0 {
		return rspolicy.Groups(), nil
	}

	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := rspolicy.GroupByName(name); !ok {
			return nil, fmt.Errorf("unknown report group %q", name)
		}
		selected[name] = true
	}

	groups := make([]rspolicy.Group, 0, len(selected))
	for _, g := range rspolicy.Groups() {
		if selected[g.Name] {
			groups = append(groups, g)
		}
	}
	return groups, nil
}
