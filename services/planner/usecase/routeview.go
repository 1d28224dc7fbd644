package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/constants"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"github.com/radityabs/rutevis/internal/utils"
)

// BuildMapView prepares one optimization run for map rendering. Per vehicle
// only the first stored route is kept, sentinel depot stops are stripped,
// units are converted for display, and geometry is either the straight
// stop-to-stop polyline or, when roadGeometry is set, the road-following
// polyline fetched from the directions provider.
func (uc *PlannerUC) BuildMapView(ctx context.Context, id string, roadGeometry bool) (*models.MapView, error) {
	optID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid optimization id: %w", err)
	}

	opt, err := uc.repo.GetOptimization(ctx, optID)
	if err != nil {
		return nil, err
	}

	routes, err := uc.repo.GetRoutes(ctx, optID)
	if err != nil {
		return nil, err
	}

	view := &models.MapView{
		OptimizationID: opt.ID,
		Routes:         make([]models.RouteView, 0, len(routes)),
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		// duplicate rows for a vehicle keep only the first seen
		if seen[route.VehicleID] {
			continue
		}
		seen[route.VehicleID] = true

		rv := models.RouteView{
			VehicleID:       route.VehicleID,
			Name:            route.Name,
			DistanceKm:      route.DistanceMeters / 1000,
			DurationMinutes: route.DurationSeconds / 60,
			GeometrySource:  models.GeometryStraight,
			Stops:           buildStopViews(route.VehicleID, route.Stops),
		}

		waypoints := routeWaypoints(route.Stops)
		rv.Geometry = waypoints

		if roadGeometry && len(waypoints) >= 2 {
			if geometry := uc.roadGeometry(ctx, waypoints); geometry != nil {
				rv.Geometry = geometry
				rv.GeometrySource = models.GeometryRoad
			}
		}

		view.Routes = append(view.Routes, rv)
	}

	return view, nil
}

// roadGeometry resolves road-following geometry for a waypoint list, served
// from the Redis cache when possible. Returns nil on any failure so the
// caller falls back to straight-line geometry instead of erroring the view.
func (uc *PlannerUC) roadGeometry(ctx context.Context, waypoints [][]float64) [][]float64 {
	key := fmt.Sprintf(constants.KeyDirectionsCache, uc.cfg.Mapbox.Profile, utils.DirectionsCacheDigest(waypoints))

	cached, err := uc.repo.GetCachedDirections(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Directions cache lookup failed", logger.Err(err))
	}
	if cached != nil {
		return cached.Geometry
	}

	result, err := uc.gw.GetDirections(ctx, waypoints)
	if err != nil {
		logger.WarnCtx(ctx, "Directions request failed, falling back to straight lines",
			logger.Err(err))
		return nil
	}

	if err := uc.repo.CacheDirections(ctx, key, result); err != nil {
		logger.WarnCtx(ctx, "Failed to cache directions result", logger.Err(err))
	}

	return result.Geometry
}

// buildStopViews strips the vehicle's depot sentinels and decodes person
// ids out of the remaining stop ids. Order restarts at 1 per route.
func buildStopViews(vehicleID string, stops []models.Stop) []models.StopView {
	views := make([]models.StopView, 0, len(stops))
	order := 0
	for _, stop := range stops {
		if isSentinelStop(vehicleID, stop.ExternalID) {
			continue
		}

		order++
		pointID, personIDs := parseStopID(stop.ExternalID)
		views = append(views, models.StopView{
			Order:     order,
			PointID:   pointID,
			PersonIDs: personIDs,
			Longitude: stop.Longitude,
			Latitude:  stop.Latitude,
		})
	}

	return views
}

// routeWaypoints is the straight-line polyline over every stop in sequence,
// depot sentinels included, each entry [lon, lat]
func routeWaypoints(stops []models.Stop) [][]float64 {
	waypoints := make([][]float64, 0, len(stops))
	for _, stop := range stops {
		waypoints = append(waypoints, []float64{stop.Longitude, stop.Latitude})
	}
	return waypoints
}

// isSentinelStop reports whether a stop id is the vehicle's synthetic
// start or end depot marker
func isSentinelStop(vehicleID, externalID string) bool {
	return externalID == vehicleID+"-start" || externalID == vehicleID+"-end"
}

// parseStopID splits a solver stop id back into the pickup point id and the
// person ids folded into it
func parseStopID(externalID string) (string, []string) {
	parts := strings.Split(externalID, personSeparator)
	if len(parts) == 1 {
		return externalID, nil
	}
	return parts[0], parts[1:]
}
