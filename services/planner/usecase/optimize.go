package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// personSeparator is the external solver convention for person-expanded
// stop ids: "<point_id>__person_<person_id>"
const personSeparator = "__person_"

// RunOptimization builds a solver input from the registered pickup points
// and vehicles, runs it on the external solver, and persists the resulting
// routes under a new optimization record. The solver is the only place the
// routing problem is ever solved; this method only translates data shapes.
func (uc *PlannerUC) RunOptimization(ctx context.Context, req *models.OptimizationRequest) (*models.Optimization, error) {
	var (
		points []models.PickupPoint
		err    error
	)
	if req.GroupTag != nil && *req.GroupTag != "" {
		points, err = uc.repo.ListPointsByGroup(ctx, *req.GroupTag)
	} else {
		points, err = uc.repo.ListPoints(ctx)
	}
	if err != nil {
		return nil, err
	}

	vehicles, err := uc.repo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no pickup points to optimize")
	}
	if len(vehicles) == 0 {
		return nil, fmt.Errorf("no vehicles to optimize")
	}

	input := buildSolverInput(points, vehicles)

	runID, err := uc.gw.StartRun(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to start optimization: %w", err)
	}

	opt := &models.Optimization{
		ExternalRunID: runID,
		Status:        models.OptimizationQueued,
		GroupTag:      req.GroupTag,
	}
	if err := uc.repo.CreateOptimization(ctx, opt); err != nil {
		return nil, err
	}

	// mark the run active once polling starts, best effort
	if err := uc.repo.UpdateOptimizationStatus(ctx, opt.ID, models.OptimizationRunning, nil); err != nil {
		logger.WarnCtx(ctx, "Failed to mark optimization running",
			logger.String("optimization_id", opt.ID.String()),
			logger.Err(err))
	}
	opt.Status = models.OptimizationRunning

	output, err := uc.gw.WaitForRun(ctx, runID)
	if err != nil {
		uc.finishRun(ctx, opt, models.OptimizationFailed, nil)
		return nil, fmt.Errorf("optimization run failed: %w", err)
	}

	routes := parseSolution(output, vehicles, req.GroupTag)
	if err := uc.repo.SaveRoutes(ctx, opt.ID, routes); err != nil {
		uc.finishRun(ctx, opt, models.OptimizationFailed, nil)
		return nil, err
	}

	uc.finishRun(ctx, opt, models.OptimizationSucceeded, routes)

	return uc.repo.GetOptimization(ctx, opt.ID)
}

// ListOptimizations retrieves the run history, most recent first
func (uc *PlannerUC) ListOptimizations(ctx context.Context) ([]models.Optimization, error) {
	return uc.repo.ListOptimizations(ctx)
}

// GetOptimization retrieves one run with its routes
func (uc *PlannerUC) GetOptimization(ctx context.Context, id string) (*models.Optimization, error) {
	optID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid optimization id: %w", err)
	}

	return uc.repo.GetOptimization(ctx, optID)
}

// finishRun records the terminal state of a run and publishes the
// completion event. Both operations are best effort: a failure here must
// not mask the solver result.
func (uc *PlannerUC) finishRun(ctx context.Context, opt *models.Optimization, status models.OptimizationStatus, routes []models.Route) {
	now := time.Now()
	if err := uc.repo.UpdateOptimizationStatus(ctx, opt.ID, status, &now); err != nil {
		logger.ErrorCtx(ctx, "Failed to update optimization status",
			logger.String("optimization_id", opt.ID.String()),
			logger.Err(err))
	}

	var totalDistance float64
	for _, route := range routes {
		totalDistance += route.DistanceMeters
	}

	event := &models.OptimizationCompletedEvent{
		OptimizationID:      opt.ID,
		Status:              status,
		RouteCount:          len(routes),
		TotalDistanceMeters: totalDistance,
		CompletedAt:         now,
	}
	if err := uc.gw.PublishOptimizationCompleted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish optimization completed event",
			logger.String("optimization_id", opt.ID.String()),
			logger.Err(err))
	}
}

// buildSolverInput translates pickup points and vehicles into the solver's
// wire format. Person ids are folded into the stop id so the solution can
// be parsed back without a side channel.
func buildSolverInput(points []models.PickupPoint, vehicles []models.Vehicle) *models.SolverInput {
	input := &models.SolverInput{
		Stops:    make([]models.SolverStop, 0, len(points)),
		Vehicles: make([]models.SolverVehicle, 0, len(vehicles)),
	}

	for _, point := range points {
		stop := models.SolverStop{
			ID: encodeStopID(point),
			Location: models.GeoPoint{
				Lon: point.Longitude,
				Lat: point.Latitude,
			},
			Quantity: 1,
		}
		if point.Quantity != nil {
			stop.Quantity = *point.Quantity
		}
		input.Stops = append(input.Stops, stop)
	}

	for _, vehicle := range vehicles {
		sv := models.SolverVehicle{
			ID:                vehicle.ID.String(),
			Capacity:          vehicle.Capacity,
			MaxDistanceMeters: vehicle.MaxDistanceKm * 1000,
		}
		if vehicle.StartLatitude != nil && vehicle.StartLongitude != nil {
			sv.StartLocation = &models.GeoPoint{
				Lon: *vehicle.StartLongitude,
				Lat: *vehicle.StartLatitude,
			}
		}
		if vehicle.EndLatitude != nil && vehicle.EndLongitude != nil {
			sv.EndLocation = &models.GeoPoint{
				Lon: *vehicle.EndLongitude,
				Lat: *vehicle.EndLatitude,
			}
		}
		input.Vehicles = append(input.Vehicles, sv)
	}

	return input
}

// encodeStopID builds the solver stop id for a pickup point, folding each
// comma-joined person id into a "__person_<id>" suffix
func encodeStopID(point models.PickupPoint) string {
	id := point.ID.String()
	if point.PersonIDs == nil {
		return id
	}

	var sb strings.Builder
	sb.WriteString(id)
	for _, person := range strings.Split(*point.PersonIDs, ",") {
		person = strings.TrimSpace(person)
		if person == "" {
			continue
		}
		sb.WriteString(personSeparator)
		sb.WriteString(person)
	}

	return sb.String()
}

// parseSolution translates the solver output into route records. Vehicles
// the solver left unused (empty routes) are dropped.
func parseSolution(output *models.SolverOutput, vehicles []models.Vehicle, groupTag *string) []models.Route {
	nameByID := make(map[string]string, len(vehicles))
	for _, vehicle := range vehicles {
		nameByID[vehicle.ID.String()] = vehicle.Name
	}

	routes := make([]models.Route, 0, len(output.Vehicles))
	for _, sr := range output.Vehicles {
		if len(sr.Route) == 0 {
			continue
		}

		name := nameByID[sr.ID]
		if name == "" {
			name = sr.ID
		}

		route := models.Route{
			VehicleID:       sr.ID,
			Name:            name,
			GroupTag:        groupTag,
			DistanceMeters:  sr.RouteTravelDistance,
			DurationSeconds: sr.RouteTravelDuration,
			Stops:           make([]models.Stop, 0, len(sr.Route)),
		}
		for i, stop := range sr.Route {
			route.Stops = append(route.Stops, models.Stop{
				Seq:        i,
				ExternalID: stop.ID,
				Longitude:  stop.Location.Lon,
				Latitude:   stop.Location.Lat,
			})
		}

		routes = append(routes, route)
	}

	return routes
}
