package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a validated bearer token together with the identity data derived
// from its claims.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// Subject is the "sub" claim of the token.
	Subject string `json:"sub"`

	// Authorities are the prefixed roles extracted from the roles claim,
	// e.g. "ROLE_admin".
	Authorities []string `json:"authorities"`
}

// HasAuthority reports whether the token grants the given authority.
func (t Token) HasAuthority(authority string) bool {
	return slices.Contains(t.Authorities, authority)
}
