package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempDotEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "key"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{Files: Files{UploadDir: "/srv/photos"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "/srv/photos", cfg.Storage.Files.UploadDir)
	assert.Equal(t, defaultMaxUploadFiles, cfg.Storage.Files.MaxUploadFiles)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, []string{defaultAllowedOrigin}, cfg.Server.AllowedOrigins)
	assert.Zero(t, cfg.App.TokenDuration, "tokens never expire by default")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_sign_key": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFile(t *testing.T) {
	p := writeTempDotEnv(t, "APP_TOKEN_SIGN_KEY=dotenv-secret\nSTORAGE_DB_DATABASE_URI=mongodb://localhost:27017\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: p})

	cfg, err := b.withDotEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: filepath.Join(t.TempDir(), "missing.env")})

	b.withDotEnv()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithDotEnv_DoesNotTouchProcessEnv(t *testing.T) {
	p := writeTempDotEnv(t, "GO_STAY_DOTENV_PROBE=1\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: p})
	b.withDotEnv()

	_, set := os.LookupEnv("GO_STAY_DOTENV_PROBE")
	assert.False(t, set)
}

// ── loadConfig ────────────────────────────────────────────────────────────────

func TestLoadConfig_PriorityEnvOverFlagsOverJSON(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"auth":    map[string]any{"token_sign_key": "json-key", "token_issuer": "json-issuer"},
		"server":  map[string]any{"http_address": "localhost:3333", "request_timeout": "5s"},
		"storage": map[string]any{"db": map[string]any{"dsn": "file:json.db"}},
	})
	dotEnvPath := writeTempDotEnv(t, "APP_LOG_LEVEL=warn\nAPP_TOKEN_ISSUER=dotenv-issuer\n")

	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")

	cfg, err := loadConfig([]string{"-a", "localhost:2222", "-c", jsonPath, "-dotenv", dotEnvPath})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, defaultUploadDir, cfg.Storage.Files.UploadDir)
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	dotEnvPath := filepath.Join(t.TempDir(), "missing.env")

	_, err := loadConfig([]string{"-dotenv", dotEnvPath})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestLoadConfig_BadFlag(t *testing.T) {
	_, err := loadConfig([]string{"-unknown-flag"})
	assert.Error(t, err)
}
