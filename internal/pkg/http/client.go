package http

import (
	"net/http"
	"time"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
