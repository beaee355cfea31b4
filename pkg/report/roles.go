package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ics-audit/roledep/pkg/config"
	"ics-audit/roledep/pkg/rspolicy"
)

// LoadIdleRoles builds the idle-role set from the configured sources: the
// roles file (one name per line, '#' comments and blanks skipped) merged with
// any inline names. An empty result is valid and produces header-only
// reports.
func LoadIdleRoles(cfg config.RolesConfig) (rspolicy.RoleSet, error) {
	roles := rspolicy.NewRoleSet(cfg.Names...)

	if cfg.File == "" {
		return roles, nil
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open idle-roles file %q: %w", cfg.File, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roles.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read idle-roles file %q: %w", cfg.File, err)
	}

	return roles, nil
}
