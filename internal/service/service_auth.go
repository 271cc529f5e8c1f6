package service

import (
	"context"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/utils"
	"github.com/joycesaquino/customer/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bearer tokens issued by an external identity provider and
// derives the caller's authorities from a configurable roles claim.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Empty disables the check.
	tokenIssuer string

	// rolesClaim names the claim holding the caller's roles.
	rolesClaim string

	// rolePrefix is prepended to every role to form an authority.
	rolePrefix string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		rolesClaim:   cfg.RolesClaim,
		rolePrefix:   cfg.RolePrefix,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry and (when configured) the issuer claim. Any validation failure is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.rolesClaim, a.rolePrefix)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
