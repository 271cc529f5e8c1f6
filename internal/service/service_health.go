package service

import (
	"context"
	"fmt"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/store"
)

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("store ping failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
