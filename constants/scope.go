package constants

// ScopeType is the visibility tier that disambiguates identical ticker
// symbols across tenants.
type ScopeType string

const (
	ScopePersonal     ScopeType = "PERSONAL"     // scoped to the creating user
	ScopeOrganization ScopeType = "ORGANIZATION" // scoped to an organization
	ScopeSystem       ScopeType = "SYSTEM"       // globally visible
)

// ScopeTypeStrings returns the stable DB values for schema validators.
func ScopeTypeStrings() []string {
	return []string{
		string(ScopePersonal),
		string(ScopeOrganization),
		string(ScopeSystem),
	}
}
