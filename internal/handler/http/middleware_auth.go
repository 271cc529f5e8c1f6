package http

import (
	"context"
	"net/http"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/utils"
)

// authenticate resolves the bearer token of the request, if any.
//
// A valid token is parsed via [service.AuthService.ParseToken] and stored in
// the request context under [utils.TokenCtxKey]. A missing or invalid token
// is logged and the request continues anonymously, unless the handler was
// built with WithRequireAuth(true), in which case it is rejected with 401.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			if h.requireAuth {
				log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
				http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err == nil {
			token, parseErr := h.services.AuthService.ParseToken(ctx, tokenString)
			if parseErr == nil {
				log.Debug().Str("subject", token.Subject).Strs("authorities", token.Authorities).Msg("request authenticated")
				next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, utils.TokenCtxKey, token)))
				return
			}
			err = parseErr
		}

		log.Warn().Err(err).Msg("bearer token rejected")
		if h.requireAuth {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authorize consults the access policy with the authorities derived by
// authenticate and answers 403 when the policy denies the request.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorities := utils.GetAuthoritiesFromContext(r.Context())
		if !h.accessPolicy(r, authorities) {
			logger.FromRequest(r).Warn().Err(ErrAccessDenied).Strs("authorities", authorities).Send()
			http.Error(w, ErrAccessDenied.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
