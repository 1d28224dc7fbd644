package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("planner-service")
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "planner-service", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "planner-service")

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}
