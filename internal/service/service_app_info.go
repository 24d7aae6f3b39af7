package service

import (
	"context"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
)

type appInfoService struct {
	appVersion string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{
		appVersion: cfg.Version,
	}, nil
}

// GetAppVersion returns the build version served by GET /version.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
