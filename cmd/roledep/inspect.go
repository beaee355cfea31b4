package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ics-audit/roledep/pkg/cli"
	"ics-audit/roledep/pkg/icsxml"
	"ics-audit/roledep/pkg/rspolicy"
)

var inspectFlags struct {
	export string
	group  string
	format string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the policies and role references extracted from an export",
	Long: `Dump the per-category policy-to-roles mapping the report pipeline would work
from, without writing any report. Useful for verifying an export before a
generation run.

Examples:
  roledep inspect --export system-export.xml --group web
  roledep inspect --export system-export.xml --format json`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.export, "export", "e", "", "configuration export XML file")
	inspectCmd.Flags().StringVarP(&inspectFlags.group, "group", "g", "", "limit output to one report group")
	inspectCmd.Flags().StringVar(&inspectFlags.format, "format", "text", "output format: text, json")
}

// inspectedPolicy is one policy and its role references.
type inspectedPolicy struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// inspectedCategory is one category's extracted policies.
type inspectedCategory struct {
	Key      string            `json:"key"`
	Header   string            `json:"header"`
	Policies []inspectedPolicy `json:"policies"`
}

// inspectedGroup is one report group's extraction result.
type inspectedGroup struct {
	Group      string              `json:"group"`
	Present    bool                `json:"present"`
	Categories []inspectedCategory `json:"categories"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if inspectFlags.export != "" {
		cfg.Export.Path = inspectFlags.export
	}
	if cfg.Export.Path == "" {
		return fmt.Errorf("no export file given (--export or export.path in config)")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	formatter, err := cli.NewFormatter(inspectFlags.format)
	if err != nil {
		return err
	}

	export, err := icsxml.Open(cfg.Export.Path, logger)
	if err != nil {
		return err
	}

	groups := rspolicy.Groups()
	if inspectFlags.group != "" {
		g, ok := rspolicy.GroupByName(inspectFlags.group)
		if !ok {
			return fmt.Errorf("unknown report group %q", inspectFlags.group)
		}
		groups = []rspolicy.Group{g}
	}

	results := make([]inspectedGroup, 0, len(groups))
	for _, g := range groups {
		policies, present := export.GroupPolicies(g)
		ig := inspectedGroup{Group: g.Name, Present: present}
		for _, cat := range g.Categories {
			ic := inspectedCategory{Key: cat.Key, Header: cat.Header}
			for _, name := range sortedPolicyNames(policies[cat.Key]) {
				ic.Policies = append(ic.Policies, inspectedPolicy{
					Name:  name,
					Roles: policies[cat.Key][name].Sorted(),
				})
			}
			ig.Categories = append(ig.Categories, ic)
		}
		results = append(results, ig)
	}

	if inspectFlags.format == "json" {
		return formatter.FormatTo(os.Stdout, results)
	}
	return formatter.FormatTo(os.Stdout, renderInspectText(results))
}

// sortedPolicyNames returns a category's policy names in lexicographic order.
func sortedPolicyNames(policies rspolicy.CategoryPolicies) []string {
	names := rspolicy.RoleSet{}
	for name := range policies {
		names.Add(name)
	}
	return names.Sorted()
}

// renderInspectText formats extraction results for terminal reading.
func renderInspectText(results []inspectedGroup) string {
	var b strings.Builder
	for _, g := range results {
		fmt.Fprintf(&b, "group %s", g.Group)
		if !g.Present {
			b.WriteString(" (not present in export)")
		}
		b.WriteString("\n")
		for _, cat := range g.Categories {
			if len(cat.Policies) == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %s (%s)\n", cat.Header, cat.Key)
			for _, p := range cat.Policies {
				fmt.Fprintf(&b, "    %s -> %s\n", p.Name, strings.Join(p.Roles, ", "))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
