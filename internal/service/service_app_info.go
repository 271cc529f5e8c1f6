package service

import (
	"context"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService combines the configured version with the linker-provided
// build metadata. The configured version wins when both are set.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := buildInfo.Info(cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
