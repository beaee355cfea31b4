package rspolicy

// CategorySpec describes one policy category within a report group: where its
// policy entries live in the export, how role references are tagged, and which
// CSV column it fills.
type CategorySpec struct {
	// Key is the stable category key used to index extracted policies.
	Key string

	// Header is the CSV column header for this category.
	Header string

	// Path is the element path of the category's policy entries in the
	// configuration export.
	Path string

	// RoleField is the child element name carrying role references.
	// Most categories use "roles"; Windows file policies and VPN tunnel
	// bandwidth policies use "role".
	RoleField string

	// ParentScoped marks categories whose entries nest under parent
	// resources. Only top-level entries (parent-type "none") are counted.
	ParentScoped bool
}

// Group is the declared ordered schema for one report: the subtree that gates
// the whole group and the category-to-column layout, in emit order.
type Group struct {
	// Name identifies the group ("web", "file", ...).
	Name string

	// Root is the element path whose absence marks the whole group as
	// unconfigured in the export.
	Root string

	// FileName is the default output file name for the group's report.
	FileName string

	// Categories is the ordered column schema.
	Categories []CategorySpec
}

// RoleColumn is the header of the leading role-name column present in every
// report.
const RoleColumn = "Roles"

const policiesRoot = "./configuration/users/resource-policies"

// WebGroup covers web resource policies: ACLs, the SSO family, caching, Java,
// rewriting, compression, JSAM, client authentication and the SAML policies.
var WebGroup = Group{
	Name:     "web",
	Root:     policiesRoot + "/web",
	FileName: "web-policies.csv",
	Categories: []CategorySpec{
		{Key: "web-acl", Header: "Web ACLs", Path: policiesRoot + "/web/acls/acl", RoleField: "roles", ParentScoped: true},
		{Key: "web-sso-basic-ntlm", Header: "SSO Basic/NTLM", Path: policiesRoot + "/web/sso/basic-ntlm/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-sso-post", Header: "SSO Form POST", Path: policiesRoot + "/web/sso/post/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-sso-headers", Header: "SSO Headers/Cookies", Path: policiesRoot + "/web/sso/headers/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-caching", Header: "Caching Policies", Path: policiesRoot + "/web/caching/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-java-acl", Header: "Java ACLs", Path: policiesRoot + "/web/java/acls/acl", RoleField: "roles", ParentScoped: true},
		{Key: "web-code-signing", Header: "Java Code Signing", Path: policiesRoot + "/web/java/code-signing/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-selective-rewrite", Header: "Selective Rewriting", Path: policiesRoot + "/web/rewriting/selective/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-compression", Header: "Compression Policies", Path: policiesRoot + "/web/compression/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-launch-jsam", Header: "Launch JSAM", Path: policiesRoot + "/web/launch-jsam/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-client-auth", Header: "Client Authentication", Path: policiesRoot + "/web/client-auth/policies/policy", RoleField: "roles", ParentScoped: true},
		{Key: "web-saml-access", Header: "SAML ACLs", Path: policiesRoot + "/web/saml/acls/acl", RoleField: "roles"},
		{Key: "web-saml-sso", Header: "SAML SSO", Path: policiesRoot + "/web/saml/sso/policies/policy", RoleField: "roles"},
		{Key: "web-custom-header", Header: "Custom Headers", Path: policiesRoot + "/web/custom-headers/policies/policy", RoleField: "roles"},
		{Key: "web-cross-domain", Header: "Cross Domain ACLs", Path: policiesRoot + "/web/cross-domain/acls/acl", RoleField: "roles"},
		{Key: "web-proxy", Header: "Web Proxy Policies", Path: policiesRoot + "/web/proxy/policies/policy", RoleField: "roles"},
		{Key: "web-protocol", Header: "Protocol Policies", Path: policiesRoot + "/web/protocol/policies/policy", RoleField: "roles"},
		{Key: "web-encoding", Header: "Encoding Policies", Path: policiesRoot + "/web/encoding/policies/policy", RoleField: "roles"},
		{Key: "web-saml-external", Header: "SAML External Apps", Path: policiesRoot + "/web/saml/external-apps/policies/policy", RoleField: "roles"},
	},
}

// FileGroup covers Windows file resource policies. These tag role references
// with "role" rather than "roles".
var FileGroup = Group{
	Name:     "file",
	Root:     policiesRoot + "/file",
	FileName: "file-policies.csv",
	Categories: []CategorySpec{
		{Key: "file-win-acl", Header: "Windows File ACLs", Path: policiesRoot + "/file/windows/acls/acl", RoleField: "role", ParentScoped: true},
		{Key: "file-win-sso", Header: "Windows SSO", Path: policiesRoot + "/file/windows/sso/policies/policy", RoleField: "role", ParentScoped: true},
		{Key: "file-win-compression", Header: "Windows Compression", Path: policiesRoot + "/file/windows/compression/policies/policy", RoleField: "role", ParentScoped: true},
	},
}

// SAMGroup covers Secure Application Manager ACLs.
var SAMGroup = Group{
	Name:     "sam",
	Root:     policiesRoot + "/sam",
	FileName: "sam-policies.csv",
	Categories: []CategorySpec{
		{Key: "sam-acl", Header: "SAM ACLs", Path: policiesRoot + "/sam/acls/acl", RoleField: "roles", ParentScoped: true},
	},
}

// TermServGroup covers terminal services ACLs.
var TermServGroup = Group{
	Name:     "termserv",
	Root:     policiesRoot + "/term-services",
	FileName: "termserv-policies.csv",
	Categories: []CategorySpec{
		{Key: "termserv-acl", Header: "Terminal Services ACLs", Path: policiesRoot + "/term-services/acls/acl", RoleField: "roles", ParentScoped: true},
	},
}

// HTML5Group covers HTML5 access ACLs.
var HTML5Group = Group{
	Name:     "html5",
	Root:     policiesRoot + "/html5",
	FileName: "html5-policies.csv",
	Categories: []CategorySpec{
		{Key: "html5-acl", Header: "HTML5 ACLs", Path: policiesRoot + "/html5/acls/acl", RoleField: "roles", ParentScoped: true},
	},
}

// VPNTunnelGroup covers network-connect (VPN tunneling) policies. Bandwidth
// policies are the one category in the group tagging roles with "role".
var VPNTunnelGroup = Group{
	Name:     "vpntunnel",
	Root:     policiesRoot + "/network-connect",
	FileName: "vpntunnel-policies.csv",
	Categories: []CategorySpec{
		{Key: "nc-acl", Header: "VPN Tunnel ACLs", Path: policiesRoot + "/network-connect/acls/acl", RoleField: "roles"},
		{Key: "nc-connection-profile", Header: "Connection Profiles", Path: policiesRoot + "/network-connect/connection-profiles/profile", RoleField: "roles"},
		{Key: "nc-split-tunnel", Header: "Split Tunnel Networks", Path: policiesRoot + "/network-connect/split-tunnel/policies/policy", RoleField: "roles"},
		{Key: "nc-bandwidth", Header: "Bandwidth Policies", Path: policiesRoot + "/network-connect/bandwidth/policies/policy", RoleField: "role"},
		{Key: "nc-node-profile", Header: "Node Connection Profiles", Path: policiesRoot + "/network-connect/node-profiles/profile", RoleField: "roles"},
	},
}

// Groups returns all report groups in their canonical emit order.
func Groups() []Group {
	return []Group{WebGroup, FileGroup, SAMGroup, TermServGroup, HTML5Group, VPNTunnelGroup}
}

// GroupByName looks up a report group by its name.
func GroupByName(name string) (Group, bool) {
	for _, g := range Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
