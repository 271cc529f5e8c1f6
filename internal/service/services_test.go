package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/store"
	"github.com/joycesaquino/customer/models"
)

func TestNewServices(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: store.MemoryDSN}}, &fixedClock{now: createdAt}, logger.Nop())
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{Version: "1.2.3"}}
	services, err := NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, services.HealthService.Check(context.Background()))
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppInfo(context.Background()).Version)

	// the customer service is wrapped with validation
	_, err = services.CustomerService.CreateCustomer(context.Background(), &models.CustomerCreate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNewServices_NoVersion(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: store.MemoryDSN}}, &fixedClock{now: createdAt}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(storages, config.StructuredConfig{}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
