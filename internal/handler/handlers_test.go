package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTP verifies that a configured HTTP address yields an
// initialised HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":4000", RequestTimeout: time.Second},
	}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that a missing HTTP address is reported
// as a misconfiguration.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
