package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	httpclient "github.com/radityabs/rutevis/internal/pkg/http"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
)

// hopHeaders are dropped when forwarding, per RFC 7230 section 6.1
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ProxyHandler forwards requests under /proxy/nextmv/* to the Nextmv cloud
// API, replacing the client's Authorization header with the server-side API
// key. The key never reaches the browser.
type ProxyHandler struct {
	client *httpclient.Client
	apiKey string
}

// NewProxyHandler creates a new Nextmv proxy handler
func NewProxyHandler(cfg models.NextmvConfig) *ProxyHandler {
	return &ProxyHandler{
		client: httpclient.NewClient(cfg.BaseURL, 60*time.Second),
		apiKey: cfg.APIKey,
	}
}

// Forward relays one request to the upstream API
func (h *ProxyHandler) Forward(c echo.Context) error {
	req := c.Request()

	upstream := strings.TrimSuffix(h.client.BaseURL, "/") + "/" + c.Param("*")
	if req.URL.RawQuery != "" {
		upstream += "?" + req.URL.RawQuery
	}

	proxyReq, err := http.NewRequestWithContext(req.Context(), req.Method, upstream, req.Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid proxy request")
	}

	copyProxyHeaders(proxyReq.Header, req.Header)
	proxyReq.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.HTTPClient.Do(proxyReq)
	if err != nil {
		logger.Error("Proxy request failed",
			logger.ErrorField(err),
			logger.String("path", c.Param("*")))
		return utils.BadGatewayResponse(c, "Upstream request failed")
	}
	defer resp.Body.Close()

	copyProxyHeaders(c.Response().Header(), resp.Header)
	c.Response().WriteHeader(resp.StatusCode)
	if _, err := io.Copy(c.Response(), resp.Body); err != nil {
		logger.Warn("Failed to relay proxy response body", logger.ErrorField(err))
	}

	return nil
}

// copyProxyHeaders copies end-to-end headers, dropping hop-by-hop headers
// and the client's own Authorization
func copyProxyHeaders(dst, src http.Header) {
	for key, values := range src {
		if http.CanonicalHeaderKey(key) == "Authorization" || isHopHeader(key) {
			continue
		}
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}

func isHopHeader(key string) bool {
	canonical := http.CanonicalHeaderKey(key)
	for _, hop := range hopHeaders {
		if canonical == hop {
			return true
		}
	}
	return false
}
