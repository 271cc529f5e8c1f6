package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joycesaquino/customer/models"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header does not follow the "Bearer <token>" form.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// validSigningMethods restricts accepted tokens to the HMAC family so that
// a token cannot downgrade verification to "none" or switch to an asymmetric
// algorithm using the shared key as a public key.
var validSigningMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following claims:
//   - Issuer    (iss): omitted when issuer is empty
//   - Subject   (sub): the caller identity
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - rolesClaim:      the roles without any authority prefix
//
// subject, rolesClaim, tokenDuration and signKey are required.
//
// Example usage:
//
//	signed, err := utils.GenerateJWTToken("", "alice", []string{"admin"}, "roles", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, roles []string, rolesClaim string, tokenDuration time.Duration, signKey string) (string, error) {
	if subject == "" || rolesClaim == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      subject,
		"iat":      jwt.NewNumericDate(now),
		"exp":      jwt.NewNumericDate(now.Add(tokenDuration)),
		rolesClaim: roles,
	}
	if issuer != "" {
		claims["iss"] = issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the caller identity from its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check when tokenIssuer is non-empty
//   - Expiration (exp) and not-before (nbf) claim checks when present
//
// The returned token carries the "sub" claim and the authorities built from
// rolesClaim by [ExtractAuthorities]. Expired tokens yield an error matching
// [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, rolesClaim, rolePrefix string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods(validSigningMethods)}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	return models.Token{
		Token:       token,
		Subject:     subject,
		Authorities: ExtractAuthorities(claims, rolesClaim, rolePrefix),
	}, nil
}

// ExtractAuthorities converts the roles found under claimName into
// authorities by prepending prefix to each role.
//
// The claim may hold a JSON array of strings or a single string with roles
// separated by spaces or commas. Empty roles and non-string array items are
// skipped. A missing claim yields an empty, non-nil slice.
func ExtractAuthorities(claims jwt.MapClaims, claimName, prefix string) []string {
	authorities := make([]string, 0)

	var roles []string
	switch v := claims[claimName].(type) {
	case string:
		roles = strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' })
	case []string:
		roles = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
	}

	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		authorities = append(authorities, prefix+role)
	}

	return authorities
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
