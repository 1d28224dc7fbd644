package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// SaveRoutes persists the routes of one optimization run in a single
// transaction. Routes are written once per run and are read-only afterwards.
func (r *PlannerRepo) SaveRoutes(ctx context.Context, optimizationID uuid.UUID, routes []models.Route) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	routeQuery := `
		INSERT INTO routes (id, optimization_id, vehicle_id, name, group_tag,
			distance_meters, duration_seconds
		) VALUES (:id, :optimization_id, :vehicle_id, :name, :group_tag,
			:distance_meters, :duration_seconds)
	`
	stopQuery := `
		INSERT INTO stops (route_id, seq, external_id, longitude, latitude)
		VALUES (:route_id, :seq, :external_id, :longitude, :latitude)
	`

	for i := range routes {
		route := &routes[i]
		if route.ID == uuid.Nil {
			route.ID = uuid.New()
		}
		route.OptimizationID = optimizationID

		if _, err := tx.NamedExecContext(ctx, routeQuery, route); err != nil {
			return fmt.Errorf("failed to insert route: %w", err)
		}

		for j := range route.Stops {
			stop := &route.Stops[j]
			stop.RouteID = route.ID
			stop.Seq = j

			if _, err := tx.NamedExecContext(ctx, stopQuery, stop); err != nil {
				return fmt.Errorf("failed to insert stop: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRoutes retrieves the routes of one optimization run with their stop
// sequences in order
func (r *PlannerRepo) GetRoutes(ctx context.Context, optimizationID uuid.UUID) ([]models.Route, error) {
	routeQuery := `
		SELECT id, optimization_id, vehicle_id, name, group_tag,
			distance_meters, duration_seconds
		FROM routes
		WHERE optimization_id = $1
		ORDER BY name
	`

	var routes []models.Route
	if err := r.db.SelectContext(ctx, &routes, routeQuery, optimizationID); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	stopQuery := `
		SELECT route_id, seq, external_id, longitude, latitude
		FROM stops
		WHERE route_id = $1
		ORDER BY seq
	`

	for i := range routes {
		var stops []models.Stop
		if err := r.db.SelectContext(ctx, &stops, stopQuery, routes[i].ID); err != nil {
			return nil, fmt.Errorf("failed to list stops: %w", err)
		}
		routes[i].Stops = stops
	}

	return routes, nil
}
