package icsxml

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"ics-audit/roledep/pkg/rspolicy"
)

// Export is a loaded configuration export, ready for policy extraction.
type Export struct {
	doc    *etree.Document
	logger *slog.Logger
}

// Open loads a configuration export from the file at path.
func Open(path string, logger *slog.Logger) (*Export, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read configuration export %q: %w", path, err)
	}
	return newExport(doc, logger), nil
}

// Parse loads a configuration export from r.
func Parse(r io.Reader, logger *slog.Logger) (*Export, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse configuration export: %w", err)
	}
	return newExport(doc, logger), nil
}

func newExport(doc *etree.Document, logger *slog.Logger) *Export {
	if logger == nil {
		logger = slog.Default()
	}
	return &Export{
		doc:    doc,
		logger: logger.With("component", "icsxml"),
	}
}

// HasSubtree reports whether the export contains an element at path.
func (e *Export) HasSubtree(path string) bool {
	return e.doc.FindElement(path) != nil
}

// Policies extracts one category's policies: a mapping from policy name to
// the set of roles the policy references. Entries applying to all roles are
// dropped, as are nested entries of parent-scoped categories. Entries without
// a name are ignored.
func (e *Export) Policies(spec rspolicy.CategorySpec) rspolicy.CategoryPolicies {
	policies := rspolicy.CategoryPolicies{}

	for _, entry := range e.doc.FindElements(spec.Path) {
		if childText(entry, "apply") == "all" {
			continue
		}
		if spec.ParentScoped && childText(entry, "parent-type") != "none" {
			continue
		}
		name := childText(entry, "name")
		if name == "" {
			continue
		}

		roles := rspolicy.RoleSet{}
		for _, ref := range entry.SelectElements(spec.RoleField) {
			if role := strings.TrimSpace(ref.Text()); role != "" {
				roles.Add(role)
			}
		}
		policies[name] = roles
	}

	return policies
}

// GroupPolicies extracts all categories of a report group. The returned map
// carries every category key of the group, so downstream resolution keeps the
// report's fixed headers intact even for unconfigured categories.
//
// The second return value is false when the group's subtree is absent from
// the export entirely; the group is then returned with all categories empty.
func (e *Export) GroupPolicies(group rspolicy.Group) (rspolicy.GroupPolicies, bool) {
	policies := make(rspolicy.GroupPolicies, len(group.Categories))

	if !e.HasSubtree(group.Root) {
		e.logger.Warn("policy subtree not present in export",
			"group", group.Name,
			"root", group.Root,
		)
		for _, cat := range group.Categories {
			policies[cat.Key] = rspolicy.CategoryPolicies{}
		}
		return policies, false
	}

	for _, cat := range group.Categories {
		policies[cat.Key] = e.Policies(cat)
	}

	e.logger.Info("extracted policy group",
		"group", group.Name,
		"categories", len(group.Categories),
		"policies", countPolicies(policies),
	)
	return policies, true
}

// countPolicies totals the extracted policies across a group's categories.
func countPolicies(policies rspolicy.GroupPolicies) int {
	n := 0
	for _, cat := range policies {
		n += len(cat)
	}
	return n
}

// childText returns the trimmed text of entry's first child with the given
// tag, or "" when the child is absent.
func childText(entry *etree.Element, tag string) string {
	child := entry.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
