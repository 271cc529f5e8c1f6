// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request and response bodies, HTTP client initialization,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/joycesaquino/customer/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key used to store the validated bearer token in the
// context. Used together with GetTokenFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TokenCtxKey, token)
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the validated bearer token from the context.
//
// Returns the token and an ok flag:
//   - ok == true: a token of type models.Token is stored in ctx
//   - ok == false: the request is anonymous or the value has an unexpected type
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// GetAuthoritiesFromContext returns the authorities of the token stored in
// ctx, or nil for anonymous requests.
func GetAuthoritiesFromContext(ctx context.Context) []string {
	token, ok := GetTokenFromContext(ctx)
	if !ok {
		return nil
	}
	return token.Authorities
}
