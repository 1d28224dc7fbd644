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

// VehicleHandler handles HTTP requests for vehicle operations
type VehicleHandler struct {
	plannerUC planner.PlannerUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(plannerUC planner.PlannerUC) *VehicleHandler {
	return &VehicleHandler{
		plannerUC: plannerUC,
	}
}

// CreateVehicle handles vehicle creation requests
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		logger.Warn("Invalid request payload for vehicle creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateVehicle"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.plannerUC.CreateVehicle(c.Request().Context(), &vehicle); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// GetVehicle handles vehicle retrieval requests
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	vehicle, err := h.plannerUC.GetVehicle(c.Request().Context(), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Vehicle not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles handles vehicle listing requests
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.plannerUC.ListVehicles(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list vehicles", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list vehicles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// UpdateVehicle handles vehicle update requests
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	vehicle.ID = id

	if err := h.plannerUC.UpdateVehicle(c.Request().Context(), &vehicle); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Vehicle not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle handles vehicle deletion requests
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	if err := h.plannerUC.DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Vehicle not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
