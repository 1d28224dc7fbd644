package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
	"github.com/radityabs/rutevis/services/planner"
)

// OptimizationHandler handles HTTP requests for optimization runs and the
// derived map views
type OptimizationHandler struct {
	plannerUC planner.PlannerUC
}

// NewOptimizationHandler creates a new optimization handler
func NewOptimizationHandler(plannerUC planner.PlannerUC) *OptimizationHandler {
	return &OptimizationHandler{
		plannerUC: plannerUC,
	}
}

// RunOptimization handles requests to start a new solver run. The request
// blocks until the run reaches a terminal state.
func (h *OptimizationHandler) RunOptimization(c echo.Context) error {
	var req models.OptimizationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for optimization",
			logger.ErrorField(err),
			logger.String("endpoint", "RunOptimization"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	opt, err := h.plannerUC.RunOptimization(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Optimization run failed", logger.ErrorField(err))
		if strings.Contains(err.Error(), "no pickup points") || strings.Contains(err.Error(), "no vehicles") {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.BadGatewayResponse(c, "Optimization run failed")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Optimization completed successfully", opt)
}

// ListOptimizations handles run history listing requests
func (h *OptimizationHandler) ListOptimizations(c echo.Context) error {
	opts, err := h.plannerUC.ListOptimizations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list optimizations", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list optimizations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Optimizations retrieved successfully", opts)
}

// GetOptimization handles single run retrieval requests
func (h *OptimizationHandler) GetOptimization(c echo.Context) error {
	opt, err := h.plannerUC.GetOptimization(c.Request().Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Optimization not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Optimization retrieved successfully", opt)
}

// GetMapView handles map view requests. The geometry query parameter
// selects road-following geometry ("road") over the default straight lines.
func (h *OptimizationHandler) GetMapView(c echo.Context) error {
	roadGeometry := c.QueryParam("geometry") == models.GeometryRoad

	view, err := h.plannerUC.BuildMapView(c.Request().Context(), c.Param("id"), roadGeometry)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Optimization not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Map view built successfully", view)
}
