package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey    = "secret-key"
	testRolesClaim = "roles"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	signed, err := GenerateJWTToken("test-issuer", "alice", []string{"admin"}, testRolesClaim, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(testSignKey), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "test-issuer", claims["iss"])
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, []any{"admin"}, claims[testRolesClaim])
}

func TestGenerateJWTToken_NoIssuer(t *testing.T) {
	signed, err := GenerateJWTToken("", "alice", nil, testRolesClaim, time.Hour, testSignKey)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)
	_, hasIssuer := claims["iss"]
	assert.False(t, hasIssuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		rolesClaim string
		duration   time.Duration
		key        string
	}{
		{"empty subject", "", testRolesClaim, time.Hour, "key"},
		{"empty roles claim", "alice", "", time.Hour, "key"},
		{"zero duration", "alice", testRolesClaim, 0, "key"},
		{"empty key", "alice", testRolesClaim, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.subject, nil, tt.rolesClaim, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	signed, err := GenerateJWTToken("issuer", "alice", []string{"admin", "user"}, testRolesClaim, time.Hour, testSignKey)
	require.NoError(t, err)

	token, err := ValidateAndParseJWTToken(signed, testSignKey, "issuer", testRolesClaim, "ROLE_")
	require.NoError(t, err)

	assert.Equal(t, "alice", token.Subject)
	assert.Equal(t, []string{"ROLE_admin", "ROLE_user"}, token.Authorities)
	assert.NotNil(t, token.Token)
	assert.True(t, token.HasAuthority("ROLE_admin"))
}

func TestValidateAndParseJWTToken_IssuerNotChecked(t *testing.T) {
	signed, err := GenerateJWTToken("someone", "alice", nil, testRolesClaim, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey, "", testRolesClaim, "ROLE_")
	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("issuer", "alice", nil, testRolesClaim, time.Hour, testSignKey)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	expiredSigned, err := expired.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		is     error
	}{
		{name: "wrong key", token: valid, key: "other", issuer: "issuer", is: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid, key: testSignKey, issuer: "other", is: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expiredSigned, key: testSignKey, is: jwt.ErrTokenExpired},
		{name: "alg none", token: unsigned, key: testSignKey, is: jwt.ErrTokenSignatureInvalid},
		{name: "garbage", token: "not.a.jwt", key: testSignKey, is: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, testRolesClaim, "ROLE_")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}
}

func TestExtractAuthorities(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   []string
	}{
		{name: "missing claim", claims: jwt.MapClaims{}, want: []string{}},
		{name: "array", claims: jwt.MapClaims{"roles": []any{"admin", "user"}}, want: []string{"ROLE_admin", "ROLE_user"}},
		{name: "string slice", claims: jwt.MapClaims{"roles": []string{"admin"}}, want: []string{"ROLE_admin"}},
		{name: "space separated", claims: jwt.MapClaims{"roles": "admin user"}, want: []string{"ROLE_admin", "ROLE_user"}},
		{name: "comma separated", claims: jwt.MapClaims{"roles": "admin, user"}, want: []string{"ROLE_admin", "ROLE_user"}},
		{name: "non-string items skipped", claims: jwt.MapClaims{"roles": []any{"admin", 42, ""}}, want: []string{"ROLE_admin"}},
		{name: "unsupported type", claims: jwt.MapClaims{"roles": 7}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAuthorities(tt.claims, "roles", "ROLE_"))
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
