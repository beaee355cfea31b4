package rspolicy

import (
	"reflect"
	"sort"
	"testing"
)

// testGroup is a two-category schema used across resolver tests.
var testGroup = Group{
	Name: "test",
	Categories: []CategorySpec{
		{Key: "cat-a", Header: "Category A"},
		{Key: "cat-b", Header: "Category B"},
	},
}

func TestResolve_MatchesRoleMembership(t *testing.T) {
	policies := GroupPolicies{
		"cat-a": {
			"alpha": NewRoleSet("Engineering", "Sales"),
			"beta":  NewRoleSet("Sales"),
		},
		"cat-b": {
			"gamma": NewRoleSet("Engineering"),
		},
	}
	idle := NewRoleSet("Engineering", "Sales", "Finance")

	table, _ := Resolve(testGroup, policies, idle)

	tests := []struct {
		role string
		key  string
		want []string
	}{
		{"Engineering", "cat-a", []string{"alpha"}},
		{"Engineering", "cat-b", []string{"gamma"}},
		{"Sales", "cat-a", []string{"alpha", "beta"}},
		{"Sales", "cat-b", []string{}},
		{"Finance", "cat-a", []string{}},
		{"Finance", "cat-b", []string{}},
	}
	for _, tt := range tests {
		got := append([]string(nil), table[tt.role][tt.key]...)
		sort.Strings(got)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("table[%s][%s] = %v, want %v", tt.role, tt.key, got, tt.want)
		}
	}
}

func TestResolve_HeaderCompleteness(t *testing.T) {
	// cat-b has no extracted policies at all; every role must still carry
	// an entry for it so that the fixed CSV headers line up.
	policies := GroupPolicies{
		"cat-a": {"alpha": NewRoleSet("Engineering")},
		"cat-b": {},
	}
	idle := NewRoleSet("Engineering", "Finance")

	table, _ := Resolve(testGroup, policies, idle)

	for role := range idle {
		for _, cat := range testGroup.Categories {
			if _, ok := table[role][cat.Key]; !ok {
				t.Errorf("missing entry for role %q category %q", role, cat.Key)
			}
		}
	}
}

func TestResolve_LengthsCoverEveryRoleAndCategory(t *testing.T) {
	policies := GroupPolicies{
		"cat-a": {"alpha": NewRoleSet("Engineering")},
		"cat-b": {},
	}
	idle := NewRoleSet("Engineering", "Finance", "Sales")

	_, lengths := Resolve(testGroup, policies, idle)

	if want := len(idle) * len(testGroup.Categories); len(lengths) != want {
		t.Fatalf("got %d observed lengths, want %d", len(lengths), want)
	}
}

func TestPad_Rectangular(t *testing.T) {
	policies := GroupPolicies{
		"cat-a": {
			"alpha": NewRoleSet("Engineering", "Sales"),
			"beta":  NewRoleSet("Engineering"),
			"delta": NewRoleSet("Engineering"),
		},
		"cat-b": {
			"gamma": NewRoleSet("Sales"),
		},
	}
	idle := NewRoleSet("Engineering", "Sales", "Finance")

	table := Pad(Resolve(testGroup, policies, idle))

	if got := table.Depth(); got != 3 {
		t.Fatalf("Depth() = %d, want 3", got)
	}
	for role, categories := range table {
		for key, list := range categories {
			if len(list) != 3 {
				t.Errorf("len(table[%s][%s]) = %d, want 3", role, key, len(list))
			}
		}
	}
}

func TestPad_SortsThenAppendsSentinels(t *testing.T) {
	policies := GroupPolicies{
		"cat-a": {
			"zulu":    NewRoleSet("Engineering"),
			"alpha":   NewRoleSet("Engineering"),
			"mike":    NewRoleSet("Engineering"),
			"oscar":   NewRoleSet("Sales"),
			"charlie": NewRoleSet("Sales"),
		},
		"cat-b": {},
	}
	idle := NewRoleSet("Engineering", "Sales")

	table := Pad(Resolve(testGroup, policies, idle))

	want := []string{"alpha", "mike", "zulu"}
	if got := table["Engineering"]["cat-a"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Engineering cat-a = %v, want %v", got, want)
	}

	// Sales has two matches: sorted prefix, then one sentinel.
	want = []string{"charlie", "oscar", ""}
	if got := table["Sales"]["cat-a"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Sales cat-a = %v, want %v", got, want)
	}

	// Sentinels never interleave with real names.
	for role, categories := range table {
		for key, list := range categories {
			sawSentinel := false
			for _, v := range list {
				if v == "" {
					sawSentinel = true
				} else if sawSentinel {
					t.Errorf("table[%s][%s] = %v: policy name after sentinel", role, key, list)
				}
			}
		}
	}
}

func TestPad_ZeroMatchesEverywhere(t *testing.T) {
	policies := GroupPolicies{
		"cat-a": {"alpha": NewRoleSet("Engineering")},
		"cat-b": {},
	}
	// None of the idle roles appear in any policy.
	idle := NewRoleSet("Finance", "Marketing")

	table := Pad(Resolve(testGroup, policies, idle))

	if got := table.Depth(); got != 0 {
		t.Fatalf("Depth() = %d, want 0", got)
	}
	for role, categories := range table {
		for key, list := range categories {
			if len(list) != 0 {
				t.Errorf("table[%s][%s] = %v, want empty", role, key, list)
			}
		}
	}
}

func TestPad_EmptyLengths(t *testing.T) {
	// No idle roles at all: Resolve observes nothing and Pad must not choke
	// on the empty accumulator.
	table, lengths := Resolve(testGroup, GroupPolicies{"cat-a": {}, "cat-b": {}}, NewRoleSet())
	if len(lengths) != 0 {
		t.Fatalf("got %d observed lengths, want 0", len(lengths))
	}
	if got := Pad(table, lengths); len(got) != 0 {
		t.Fatalf("Pad returned %d roles, want 0", len(got))
	}
}

// TestResolvePad_WorkedExample pins the documented two-category example:
// A holds p1 (roleX) and p2 (roleY), B is empty.
func TestResolvePad_WorkedExample(t *testing.T) {
	group := Group{
		Name: "example",
		Categories: []CategorySpec{
			{Key: "A", Header: "A"},
			{Key: "B", Header: "B"},
		},
	}
	policies := GroupPolicies{
		"A": {
			"p1": NewRoleSet("roleX"),
			"p2": NewRoleSet("roleY"),
		},
		"B": {},
	}

	table, lengths := Resolve(group, policies, NewRoleSet("roleX", "roleY"))

	maxLen := 0
	for _, n := range lengths {
		if n > maxLen {
			maxLen = n
		}
	}
	if maxLen != 1 {
		t.Fatalf("max observed length = %d, want 1", maxLen)
	}

	table = Pad(table, lengths)

	want := DependencyTable{
		"roleX": {"A": []string{"p1"}, "B": []string{""}},
		"roleY": {"A": []string{"p2"}, "B": []string{""}},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("padded table = %v, want %v", table, want)
	}
}

// TestResolve_StatePerCall runs two resolutions back to back and checks the
// second is unaffected by the first's observed lengths.
func TestResolve_StatePerCall(t *testing.T) {
	wide := GroupPolicies{
		"cat-a": {
			"p1": NewRoleSet("Engineering"),
			"p2": NewRoleSet("Engineering"),
			"p3": NewRoleSet("Engineering"),
		},
		"cat-b": {},
	}
	narrow := GroupPolicies{
		"cat-a": {"q1": NewRoleSet("Engineering")},
		"cat-b": {},
	}
	idle := NewRoleSet("Engineering")

	first := Pad(Resolve(testGroup, wide, idle))
	if got := first.Depth(); got != 3 {
		t.Fatalf("first Depth() = %d, want 3", got)
	}

	second := Pad(Resolve(testGroup, narrow, idle))
	if got := second.Depth(); got != 1 {
		t.Errorf("second Depth() = %d, want 1 (first run leaked into padding)", got)
	}
}
