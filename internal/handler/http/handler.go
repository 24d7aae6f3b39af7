package http

import (
	"time"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/service"
)

// Settings are the transport options read from configuration at startup.
type Settings struct {
	CookieSecure   bool
	RequestTimeout time.Duration
	AllowedOrigins []string
	UploadDir      string
	MaxUploadSize  int64
}

// SettingsFromConfig extracts the HTTP transport settings from cfg.
func SettingsFromConfig(cfg *config.StructuredConfig) Settings {
	return Settings{
		CookieSecure:   cfg.App.CookieSecure,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		UploadDir:      cfg.Storage.Files.UploadDir,
		MaxUploadSize:  cfg.Storage.Files.MaxUploadSize,
	}
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
