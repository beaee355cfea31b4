// Package rspolicy resolves resource-policy dependencies for idle user roles
// and shapes them into rectangular, CSV-ready report tables.
//
// # Overview
//
// A Connect Secure configuration export groups its resource policies by
// feature area (web, file, SAM, terminal services, HTML5, VPN tunneling).
// Each area maps to one report Group here, with an ordered list of policy
// categories that doubles as the report's column schema.
//
// The pipeline for one report is:
//
//	policies := export.GroupPolicies(group)          // pkg/icsxml
//	table, lengths := rspolicy.Resolve(group, policies, idleRoles)
//	table = rspolicy.Pad(table, lengths)
//	err := rspolicy.WriteFile(path, group, table)
//
// Resolve answers, for every idle role and every category, which policies
// reference that role. Pad normalizes every per-category list to one common
// length by sorting and appending empty-string entries, so that the table can
// be emitted as flat same-length CSV columns.
//
// # State isolation
//
// The observed-lengths accumulator is returned by Resolve and consumed by Pad
// as plain values. No package or struct state survives a report run, so
// generating several reports from one process can never cross-contaminate
// their padding computations.
package rspolicy
