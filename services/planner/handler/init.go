package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/middleware"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/services/planner/handler/http"
)

// Handler coordinates the HTTP handlers for the planner service
type Handler struct {
	authHandler         *http.AuthHandler
	pointHandler        *http.PointHandler
	vehicleHandler      *http.VehicleHandler
	optimizationHandler *http.OptimizationHandler
	exportHandler       *http.ExportHandler
	proxyHandler        *http.ProxyHandler
	cfg                 *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	pointHandler *http.PointHandler,
	vehicleHandler *http.VehicleHandler,
	optimizationHandler *http.OptimizationHandler,
	exportHandler *http.ExportHandler,
	proxyHandler *http.ProxyHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:         authHandler,
		pointHandler:        pointHandler,
		vehicleHandler:      vehicleHandler,
		optimizationHandler: optimizationHandler,
		exportHandler:       exportHandler,
		proxyHandler:        proxyHandler,
		cfg:                 cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return middleware.JWTAuthMiddleware(h.cfg.JWT)
}
