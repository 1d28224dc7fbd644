package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// CreateVehicle inserts a new vehicle
func (r *PlannerRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = uuid.New()
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	query := `
		INSERT INTO vehicles (id, name, capacity, max_distance_km,
			start_latitude, start_longitude, end_latitude, end_longitude,
			created_at, updated_at
		) VALUES (:id, :name, :capacity, :max_distance_km,
			:start_latitude, :start_longitude, :end_latitude, :end_longitude,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, vehicle)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

// GetVehicle retrieves a vehicle by id
func (r *PlannerRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, name, capacity, max_distance_km, start_latitude,
			start_longitude, end_latitude, end_longitude, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListVehicles retrieves all vehicles ordered by creation time
func (r *PlannerRepo) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query := `
		SELECT id, name, capacity, max_distance_km, start_latitude,
			start_longitude, end_latitude, end_longitude, created_at, updated_at
		FROM vehicles
		ORDER BY created_at
	`

	var vehicles []models.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// UpdateVehicle updates an existing vehicle
func (r *PlannerRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.UpdatedAt = time.Now()

	query := `
		UPDATE vehicles
		SET name = :name, capacity = :capacity,
			max_distance_km = :max_distance_km,
			start_latitude = :start_latitude, start_longitude = :start_longitude,
			end_latitude = :end_latitude, end_longitude = :end_longitude,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, vehicle)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}

// DeleteVehicle removes a vehicle
func (r *PlannerRepo) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}
