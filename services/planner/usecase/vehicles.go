package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// CreateVehicle validates and stores a new vehicle
func (uc *PlannerUC) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	return uc.repo.CreateVehicle(ctx, vehicle)
}

// GetVehicle retrieves a vehicle by id
func (uc *PlannerUC) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle id: %w", err)
	}

	return uc.repo.GetVehicle(ctx, vehicleID)
}

// ListVehicles retrieves all vehicles
func (uc *PlannerUC) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return uc.repo.ListVehicles(ctx)
}

// UpdateVehicle validates and updates an existing vehicle
func (uc *PlannerUC) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		return fmt.Errorf("vehicle id is required")
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	return uc.repo.UpdateVehicle(ctx, vehicle)
}

// DeleteVehicle removes a vehicle
func (uc *PlannerUC) DeleteVehicle(ctx context.Context, id string) error {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle id: %w", err)
	}

	return uc.repo.DeleteVehicle(ctx, vehicleID)
}

func validateVehicle(vehicle *models.Vehicle) error {
	if vehicle.Name == "" {
		return fmt.Errorf("vehicle name is required")
	}
	if vehicle.Capacity <= 0 {
		return fmt.Errorf("vehicle capacity must be positive")
	}
	if vehicle.MaxDistanceKm < 0 {
		return fmt.Errorf("max distance must not be negative")
	}

	// Start and end locations must be complete pairs when present
	if (vehicle.StartLatitude == nil) != (vehicle.StartLongitude == nil) {
		return fmt.Errorf("start location requires both latitude and longitude")
	}
	if (vehicle.EndLatitude == nil) != (vehicle.EndLongitude == nil) {
		return fmt.Errorf("end location requires both latitude and longitude")
	}

	return nil
}
