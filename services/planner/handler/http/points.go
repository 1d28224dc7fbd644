package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
	"github.com/radityabs/rutevis/services/planner"
)

// PointHandler handles HTTP requests for pickup point operations
type PointHandler struct {
	plannerUC planner.PlannerUC
}

// NewPointHandler creates a new pickup point handler
func NewPointHandler(plannerUC planner.PlannerUC) *PointHandler {
	return &PointHandler{
		plannerUC: plannerUC,
	}
}

// CreatePoint handles pickup point creation requests
func (h *PointHandler) CreatePoint(c echo.Context) error {
	var point models.PickupPoint
	if err := c.Bind(&point); err != nil {
		logger.Warn("Invalid request payload for pickup point creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreatePoint"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.plannerUC.CreatePoint(c.Request().Context(), &point); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Pickup point created successfully", point)
}

// GetPoint handles pickup point retrieval requests
func (h *PointHandler) GetPoint(c echo.Context) error {
	point, err := h.plannerUC.GetPoint(c.Request().Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Pickup point not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup point retrieved successfully", point)
}

// ListPoints handles pickup point listing requests
func (h *PointHandler) ListPoints(c echo.Context) error {
	points, err := h.plannerUC.ListPoints(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list pickup points", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list pickup points")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup points retrieved successfully", points)
}

// UpdatePoint handles pickup point update requests
func (h *PointHandler) UpdatePoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup point id")
	}

	var point models.PickupPoint
	if err := c.Bind(&point); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	point.ID = id

	if err := h.plannerUC.UpdatePoint(c.Request().Context(), &point); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Pickup point not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup point updated successfully", point)
}

// DeletePoint handles pickup point deletion requests
func (h *PointHandler) DeletePoint(c echo.Context) error {
	if err := h.plannerUC.DeletePoint(c.Request().Context(), c.Param("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Pickup point not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup point deleted successfully", nil)
}
