package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/service"
	"github.com/joycesaquino/customer/internal/utils"
)

// AccessPolicy decides whether a request may proceed given the authorities
// derived from its bearer token. Anonymous requests carry no authorities.
type AccessPolicy func(r *http.Request, authorities []string) bool

// PermitAll is the default AccessPolicy: every request is allowed.
func PermitAll(*http.Request, []string) bool {
	return true
}

// RequireAuthority returns an AccessPolicy that admits only callers holding
// authority.
func RequireAuthority(authority string) AccessPolicy {
	return func(_ *http.Request, authorities []string) bool {
		return slices.Contains(authorities, authority)
	}
}

type Option func(*Handler)

// WithAccessPolicy replaces the default PermitAll policy.
func WithAccessPolicy(policy AccessPolicy) Option {
	return func(h *Handler) {
		if policy != nil {
			h.accessPolicy = policy
		}
	}
}

// WithRequireAuth makes authenticate reject requests that carry no valid
// bearer token instead of letting them through anonymously.
func WithRequireAuth(required bool) Option {
	return func(h *Handler) {
		h.requireAuth = required
	}
}

// WithRequestTimeout bounds the processing time of every /api request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

type Handler struct {
	services *service.Services

	accessPolicy   AccessPolicy
	requireAuth    bool
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:     services,
		accessPolicy: PermitAll,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("require_auth", h.requireAuth).Msg("http handler created")
	return h
}
