package rspolicy

import "sort"

// Resolve determines, for every idle role and every category of the group,
// which policies reference that role.
//
// Every category key of the group is present under every role in the returned
// table, even when no policy matched. The report headers are fixed per group,
// so a column must exist for a category whether or not it has data.
//
// The second return value collects the length of every (role, category) list
// produced during this call. Pad uses it to compute the common target length.
// It is a per-call value on purpose: keeping it anywhere longer-lived would
// leak lengths from one report into the next report's padding.
func Resolve(group Group, policies GroupPolicies, idleRoles RoleSet) (DependencyTable, []int) {
	table := make(DependencyTable, len(idleRoles))
	lengths := make([]int, 0, len(idleRoles)*len(group.Categories))

	for role := range idleRoles {
		perCategory := make(map[string][]string, len(group.Categories))
		for _, cat := range group.Categories {
			matched := []string{}
			for name, roles := range policies[cat.Key] {
				if roles.Has(role) {
					matched = append(matched, name)
				}
			}
			perCategory[cat.Key] = matched
			lengths = append(lengths, len(matched))
		}
		table[role] = perCategory
	}

	return table, lengths
}

// Pad normalizes every (role, category) list of the table to the maximum
// observed length: lists are sorted lexicographically, then filled with
// empty-string entries up to the target length. Policy names are non-empty by
// construction, so the sentinel never collides with real data.
//
// A zero maximum means no idle role matched any policy anywhere. The table is
// returned unchanged in that case and downstream emits a header-only report.
func Pad(table DependencyTable, lengths []int) DependencyTable {
	maxLen := 0
	for _, n := range lengths {
		if n > maxLen {
			maxLen = n
		}
	}
	if maxLen == 0 {
		return table
	}

	for _, categories := range table {
		for key, matched := range categories {
			sort.Strings(matched)
			for len(matched) < maxLen {
				matched = append(matched, "")
			}
			categories[key] = matched
		}
	}

	return table
}
