// Package icsxml reads resource policies out of a Connect Secure XML
// configuration export.
//
// The export is loaded once into an element tree; extraction then walks fixed
// paths declared by the report schemas in pkg/rspolicy. Two filters apply
// while collecting a category's policies:
//
//   - entries whose apply element is "all" are skipped, since a policy that
//     applies to all roles carries no per-role dependency information
//   - for parent-scoped categories, only entries with parent-type "none"
//     count; nested entries inherit their parent's role wiring
//
// A missing subtree is not an error. Exports from appliances without a
// feature licensed simply lack that branch, and the affected report group is
// treated as empty.
package icsxml
