package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL with the given timeout.
// A zero timeout leaves resty's default (no timeout) in place. Each call
// returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.github.com", 30*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/repos/owner/repo")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
