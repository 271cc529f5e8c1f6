package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/customers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client bound to baseURL.
//
// Every request carries "Accept: application/json" and is bounded by
// timeout. Connection errors are retried twice with a short backoff;
// responses with a status code are never retried, so that non-idempotent
// requests are not repeated after the server has seen them.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil && r.StatusCode() == 0
		})

	return &HTTPClient{Client: client}
}

// WithBearerToken sets the "Authorization: Bearer <token>" header on every
// subsequent request. An empty token leaves the client unchanged.
func (c *HTTPClient) WithBearerToken(token string) *HTTPClient {
	if token != "" {
		c.SetAuthToken(token)
	}
	return c
}
