package config

import "time"

const (
	defaultHTTPAddress        = "localhost:4000"
	defaultRequestTimeout     = 30 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultAllowedOrigin      = "http://localhost:3000"
	defaultPasswordHashCost   = 10
	defaultLogLevel           = "debug"
	defaultDBName             = "go-stay"
	defaultMaxOpenConns       = 10
	defaultUploadDir          = "uploads"
	defaultMaxUploadFiles     = 10
	defaultMaxUploadSize      = 32 << 20
	defaultRemoteFetchTimeout = 15 * time.Second
	defaultDotEnvPath         = ".env"
)

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Name:         defaultDBName,
				MaxOpenConns: defaultMaxOpenConns,
			},
			Files: Files{
				UploadDir:          defaultUploadDir,
				MaxUploadFiles:     defaultMaxUploadFiles,
				MaxUploadSize:      defaultMaxUploadSize,
				RemoteFetchTimeout: defaultRemoteFetchTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  []string{defaultAllowedOrigin},
		},
	}
}
