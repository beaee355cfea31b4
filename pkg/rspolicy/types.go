package rspolicy

import "sort"

// RoleSet is a set of role names.
type RoleSet map[string]struct{}

// NewRoleSet builds a RoleSet from the given role names.
func NewRoleSet(names ...string) RoleSet {
	s := make(RoleSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a role name into the set.
func (s RoleSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains the given role name.
func (s RoleSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the role names in lexicographic order.
func (s RoleSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CategoryPolicies maps a policy name to the set of roles the policy
// references. One value exists per category; it is built once at extraction
// time and never mutated afterwards.
type CategoryPolicies map[string]RoleSet

// GroupPolicies maps a category key to that category's extracted policies.
// Keys are the CategorySpec keys of one Group, fixed in advance by the
// report schema.
type GroupPolicies map[string]CategoryPolicies

// DependencyTable maps role name -> category key -> policy names. Before
// padding the inner lists are sparse; after padding every list in the table
// has the same length, with empty-string entries filling the tail.
type DependencyTable map[string]map[string][]string

// Roles returns the table's role names in lexicographic order.
func (t DependencyTable) Roles() []string {
	roles := make([]string, 0, len(t))
	for r := range t {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// Depth returns the common per-category list length of a padded table.
// All lists share one length after Pad, so the first list found decides.
// An empty table has depth zero.
func (t DependencyTable) Depth() int {
	for _, categories := range t {
		for _, policies := range categories {
			return len(policies)
		}
	}
	return 0
}
