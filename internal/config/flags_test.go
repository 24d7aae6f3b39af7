package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Host: "", Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:4000", NetAddress{Host: "localhost", Port: 4000}, false},
		{"ip", "0.0.0.0:80", NetAddress{Host: "0.0.0.0", Port: 80}, false},
		{"all interfaces", ":4000", NetAddress{Host: "", Port: 4000}, false},
		{"no port", "localhost", NetAddress{}, true},
		{"bad port", "localhost:http", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"port out of range", "localhost:70000", NetAddress{}, true},
		{"bad host", "example:4000", NetAddress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:4000",
		"-d", "postgres://localhost/db",
		"-db-name", "stay",
		"-u", "/srv/uploads",
		"-config", "/etc/stay.json",
		"-dotenv", "/etc/stay.env",
		"-token-sign-key", "secret",
		"-token-issuer", "go-stay",
		"-token-duration", "2h",
		"-request-timeout", "10s",
		"-allowed-origins", "http://a.test, http://b.test",
		"-log-level", "error",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "stay", cfg.Storage.DB.Name)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "/etc/stay.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/stay.env", cfg.DotEnvPath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "go-stay", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Server.AllowedOrigins)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
