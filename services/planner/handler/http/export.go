package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/utils"
	"github.com/radityabs/rutevis/services/planner"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeKML  = "application/vnd.google-earth.kml+xml"
)

// ExportHandler handles HTTP requests for route exports
type ExportHandler struct {
	plannerUC planner.PlannerUC
}

// NewExportHandler creates a new export handler
func NewExportHandler(plannerUC planner.PlannerUC) *ExportHandler {
	return &ExportHandler{
		plannerUC: plannerUC,
	}
}

// ExportExcel handles spreadsheet export requests
func (h *ExportHandler) ExportExcel(c echo.Context) error {
	data, filename, err := h.plannerUC.ExportExcel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.exportError(c, err)
	}

	return h.sendAttachment(c, contentTypeXLSX, filename, data)
}

// ExportKML handles KML export requests
func (h *ExportHandler) ExportKML(c echo.Context) error {
	data, filename, err := h.plannerUC.ExportKML(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.exportError(c, err)
	}

	return h.sendAttachment(c, contentTypeKML, filename, data)
}

func (h *ExportHandler) exportError(c echo.Context, err error) error {
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no routes") {
		return utils.NotFoundResponse(c, "Optimization has no exportable routes")
	}

	logger.Error("Export failed", logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "Export failed")
}

func (h *ExportHandler) sendAttachment(c echo.Context, contentType, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, contentType, data)
}
