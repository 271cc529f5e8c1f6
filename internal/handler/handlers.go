package handler

import (
	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/handler/http"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The bearer-token
// mode and the per-request timeout of the customer API come from cfg.App and
// cfg.Server respectively.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger,
			http.WithRequireAuth(cfg.App.RequireAuth),
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
		)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
