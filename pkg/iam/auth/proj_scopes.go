package auth

import "strings"

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Internship catalog
// ============================================================================

const (
	ScopeAll = "*"

	// Internship scopes
	ScopeInternshipsAll    = "internships:*"
	ScopeInternshipsWrite  = "internships:write"
	ScopeInternshipsDelete = "internships:delete"
	ScopeInternshipsImport = "internships:import" // Bulk CSV import

	// Profile scopes
	ScopeProfilesAll   = "profiles:*"
	ScopeProfilesRead  = "profiles:read"
	ScopeProfilesWrite = "profiles:write"
)

// AdminScopes are granted to the configured administrator on login
var AdminScopes = []string{
	ScopeInternshipsAll,
	ScopeProfilesAll,
}

// HasScope reports whether granted satisfies required, honoring "*" and "<resource>:*" wildcards
func HasScope(granted []string, required string) bool {
	resource, _, _ := strings.Cut(required, ":")
	for _, g := range granted {
		if g == required || g == ScopeAll || g == resource+":*" {
			return true
		}
	}
	return false
}
