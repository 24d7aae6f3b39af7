package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// withTraceID does.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:   "explicit status and body",
			method: http.MethodPost,
			path:   "/places",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			want: []string{`"method":"POST"`, `"uri":"/places"`, `"status":201`, `"size":7`, `"duration":`},
		},
		{
			name:    "implicit 200",
			method:  http.MethodGet,
			path:    "/main?x=1",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			want:    []string{`"uri":"/main?x=1"`, `"status":200`, `"size":0`},
		},
		{
			name:   "error response",
			method: http.MethodDelete,
			path:   "/booking/b-1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			},
			want: []string{`"status":403`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t, Settings{})
			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), &buf)

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			for _, fragment := range tt.want {
				assert.Contains(t, buf.String(), fragment)
			}
		})
	}
}
