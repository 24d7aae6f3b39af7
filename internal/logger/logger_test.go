package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured redirects l to a buffer and returns it.
func captured(l *Logger) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	return l, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	l, buf := captured(NewLogger("go-stay-server"))

	l.Info().Str("place_id", "p-1").Msg("place created")

	entry := lastEntry(t, buf)
	assert.Equal(t, "go-stay-server", entry["role"])
	assert.Equal(t, "place created", entry["message"])
	assert.Equal(t, "p-1", entry["place_id"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithLevel(t *testing.T) {
	t.Run("filters lower levels", func(t *testing.T) {
		l, buf := captured(NewLogger("go-stay-server"))

		l = l.WithLevel("warn")
		l.Info().Msg("dropped")
		assert.Empty(t, buf.String())

		l.Warn().Msg("kept")
		assert.Equal(t, "kept", lastEntry(t, buf)["message"])
	})

	t.Run("empty or unknown level keeps the logger", func(t *testing.T) {
		l := Nop()
		assert.Same(t, l, l.WithLevel(""))
		assert.Same(t, l, l.WithLevel("verbose"))
	})
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	l.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	parent, buf := captured(NewLogger("go-stay-server"))

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "t-1").Logger()
	child.Info().Msg("from child")
	entry := lastEntry(t, buf)
	assert.Equal(t, "go-stay-server", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()), "a context without a logger still yields one")

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	FromContext(zl.WithContext(context.Background())).Info().Msg("service call")
	assert.Equal(t, "t-2", lastEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	require.NotNil(t, FromRequest(req))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-3").Logger()
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Warn().Msg("request rejected")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "t-3", entry["trace_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestForContext(t *testing.T) {
	t.Run("falls back to the receiver", func(t *testing.T) {
		base, buf := captured(NewLogger("go-stay-server"))

		got := base.ForContext(context.Background())
		assert.Same(t, base, got)

		got.Info().Msg("startup path")
		assert.Equal(t, "go-stay-server", lastEntry(t, buf)["role"])
	})

	t.Run("prefers the request-scoped logger", func(t *testing.T) {
		base, baseBuf := captured(NewLogger("go-stay-server"))

		var reqBuf bytes.Buffer
		zl := zerolog.New(&reqBuf).With().Str("trace_id", "t-4").Logger()
		ctx := zl.WithContext(context.Background())

		base.ForContext(ctx).Info().Msg("request path")
		assert.Equal(t, "t-4", lastEntry(t, &reqBuf)["trace_id"])
		assert.Empty(t, baseBuf.String())
	})
}
