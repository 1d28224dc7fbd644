package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/radityabs/rutevis/internal/pkg/logger"
)

// BearerClient is an HTTP client that authenticates with a bearer token.
// Both external APIs this service talks to (Nextmv, Mapbox token aside)
// accept this scheme.
type BearerClient struct {
	client      *nethttp.Client
	token       string
	baseURL     string
	serviceName string
}

// NewBearerClient creates a new HTTP client with bearer token authentication
func NewBearerClient(baseURL, token, serviceName string) *BearerClient {
	return &BearerClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		token:       token,
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *BearerClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// Get performs a GET request with bearer authentication
func (c *BearerClient) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with bearer authentication
func (c *BearerClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON response
func (c *BearerClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("HTTP error: %d %s: %s", resp.StatusCode, resp.Status, payload)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// GetJSON performs a GET request and decodes the JSON response
func (c *BearerClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("HTTP error: %d %s: %s", resp.StatusCode, resp.Status, payload)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// doRequest performs the actual HTTP request with bearer authentication
func (c *BearerClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}
