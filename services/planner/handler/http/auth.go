package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
	"github.com/radityabs/rutevis/services/planner"
)

// AuthHandler handles HTTP requests for operator authentication
type AuthHandler struct {
	plannerUC planner.PlannerUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(plannerUC planner.PlannerUC) *AuthHandler {
	return &AuthHandler{
		plannerUC: plannerUC,
	}
}

// Login handles operator login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for login",
			logger.ErrorField(err),
			logger.String("endpoint", "Login"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.plannerUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
