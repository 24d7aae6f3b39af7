// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-stay server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an
// optional JSON file, an optional .env file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password hashing, session
	// tokens and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend and the
	// upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, CORS and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file. Defaults to ".env";
	// a missing file is ignored.
	// Populated via the DOTENV environment variable or the -dotenv flag.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and logging.
type App struct {
	// PasswordHashCost is the bcrypt cost used when hashing passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TokenSignKey is the process-wide secret used to sign and verify
	// session tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim embedded in every token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long a session token remains valid.
	// Zero (the default) issues tokens without expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieSecure marks the session cookie as Secure (HTTPS only).
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// LogLevel is the minimal level of emitted log entries.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the build version exposed via GET /version. It is filled
	// from linker flags, not from configuration sources.
	Version string
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:4000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the origins allowed to send credentialed
	// cross-origin requests.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the database backend. The backend is
// selected by the DSN scheme:
//   - postgres:// or postgresql://  → PostgreSQL
//   - mongodb:// or mongodb+srv://  → MongoDB
//   - file: or a *.db / *.sqlite path → SQLite
type DB struct {
	// DSN is the Data Source Name of the database. Required.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// MaxOpenConns limits the SQL connection pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Files holds file-system settings for uploaded photos.
type Files struct {
	// UploadDir is the directory where uploaded photos are stored and
	// served from under /uploads/.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxUploadFiles is the maximum number of files accepted by a single
	// multipart upload.
	// Env: STORAGE_FILES_MAX_UPLOAD_FILES
	MaxUploadFiles int `env:"MAX_UPLOAD_FILES"`

	// MaxUploadSize is the maximum size in bytes of a multipart upload
	// request and of a remotely fetched photo.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// RemoteFetchTimeout bounds downloads performed by upload-by-link.
	// Env: STORAGE_FILES_REMOTE_FETCH_TIMEOUT
	RemoteFetchTimeout time.Duration `env:"REMOTE_FETCH_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. .env file (path resolved from sources 1 and 2, default ".env")
//  5. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDotEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
