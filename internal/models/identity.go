package models

import "casechain/backend/internal/config"

// Identity is the resolved caller attached to every mutating call. Token
// verification happens at the transport edge; the engine only sees this.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Anonymous is the implicit identity of an unauthenticated whistleblower.
var Anonymous = Identity{ID: "whistleblower", Name: "Whistleblower", Role: config.RoleWhistleblower}

// HasRole reports whether the identity carries one of the given roles.
func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
