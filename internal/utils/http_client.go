package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound requests (remote photo downloads).
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get("https://example.com/a.jpg")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the given per-request timeout.
// A non-positive timeout leaves resty's default (no timeout) in place; the
// request context still bounds every call.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", "go-stay/uploader")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
