package service

import (
	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/store"
	"github.com/joycesaquino/customer/models"
)

type Services struct {
	CustomerService CustomerService
	AuthService     AuthService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	customerService := NewCustomerValidationService().
		Wrap(NewCustomerService(storages.CustomerRepository, logger))

	return &Services{
		CustomerService: customerService,
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfoService,
		HealthService:   NewHealthService(storages, logger),
	}, nil
}
