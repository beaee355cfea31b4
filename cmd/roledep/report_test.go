package main

import (
	"testing"

	"ics-audit/roledep/pkg/config"
)

func TestApplyReportFlags(t *testing.T) {
	defer func() {
		reportFlags.export = ""
		reportFlags.roles = nil
		reportFlags.outDir = ""
		reportFlags.groups = nil
		reportFlags.noHistory = false
	}()

	reportFlags.export = "export.xml"
	reportFlags.roles = []string{"Legacy"}
	reportFlags.outDir = "/tmp/out"
	reportFlags.groups = []string{"web"}
	reportFlags.noHistory = true

	cfg := config.DefaultConfig()
	cfg.Roles.Names = []string{"From Config"}
	applyReportFlags(cfg)

	if cfg.Export.Path != "export.xml" {
		t.Errorf("export path = %q", cfg.Export.Path)
	}
	if len(cfg.Roles.Names) != 2 {
		t.Errorf("roles = %v, flag roles should merge with config", cfg.Roles.Names)
	}
	if cfg.Output.Dir != "/tmp/out" {
		t.Errorf("out dir = %q", cfg.Output.Dir)
	}
	if len(cfg.Output.Groups) != 1 || cfg.Output.Groups[0] != "web" {
		t.Errorf("groups = %v", cfg.Output.Groups)
	}
	if cfg.History.Enabled {
		t.Error("history still enabled with --no-history")
	}
}

func TestApplyReportFlags_NoFlagsKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Export.Path = "configured.xml"
	cfg.Output.Dir = "configured-reports"

	applyReportFlags(cfg)

	if cfg.Export.Path != "configured.xml" || cfg.Output.Dir != "configured-reports" {
		t.Errorf("unset flags overwrote config: %+v", cfg)
	}
}
