package handler

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes registers all HTTP routes of the planner service.
// Read endpoints are open; mutations and the upstream proxy require a JWT.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := h.GetJWTMiddleware()

	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)

	// Pickup point routes
	pointGroup := e.Group("/points")
	pointGroup.GET("", h.pointHandler.ListPoints)
	pointGroup.GET("/:id", h.pointHandler.GetPoint)
	pointGroup.POST("", h.pointHandler.CreatePoint, jwt)
	pointGroup.PUT("/:id", h.pointHandler.UpdatePoint, jwt)
	pointGroup.DELETE("/:id", h.pointHandler.DeletePoint, jwt)

	// Vehicle routes
	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.GET("", h.vehicleHandler.ListVehicles)
	vehicleGroup.GET("/:id", h.vehicleHandler.GetVehicle)
	vehicleGroup.POST("", h.vehicleHandler.CreateVehicle, jwt)
	vehicleGroup.PUT("/:id", h.vehicleHandler.UpdateVehicle, jwt)
	vehicleGroup.DELETE("/:id", h.vehicleHandler.DeleteVehicle, jwt)

	// Optimization run routes
	optGroup := e.Group("/optimizations")
	optGroup.GET("", h.optimizationHandler.ListOptimizations)
	optGroup.GET("/:id", h.optimizationHandler.GetOptimization)
	optGroup.GET("/:id/map", h.optimizationHandler.GetMapView)
	optGroup.GET("/:id/export/xlsx", h.exportHandler.ExportExcel)
	optGroup.GET("/:id/export/kml", h.exportHandler.ExportKML)
	optGroup.POST("", h.optimizationHandler.RunOptimization, jwt)

	// Nextmv proxy routes. CORS is scoped to the proxy group so the map
	// client can call the upstream API through this service; it runs ahead
	// of the JWT check so preflight requests are not rejected.
	proxyGroup := e.Group("/proxy/nextmv", echomiddleware.CORS(), jwt)
	proxyGroup.Any("/*", h.proxyHandler.Forward)
}
