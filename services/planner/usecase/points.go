package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// CreatePoint validates and stores a new pickup point
func (uc *PlannerUC) CreatePoint(ctx context.Context, point *models.PickupPoint) error {
	if err := validatePoint(point); err != nil {
		return err
	}

	return uc.repo.CreatePoint(ctx, point)
}

// GetPoint retrieves a pickup point by id
func (uc *PlannerUC) GetPoint(ctx context.Context, id string) (*models.PickupPoint, error) {
	pointID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid pickup point id: %w", err)
	}

	return uc.repo.GetPoint(ctx, pointID)
}

// ListPoints retrieves all pickup points
func (uc *PlannerUC) ListPoints(ctx context.Context) ([]models.PickupPoint, error) {
	return uc.repo.ListPoints(ctx)
}

// UpdatePoint validates and updates an existing pickup point
func (uc *PlannerUC) UpdatePoint(ctx context.Context, point *models.PickupPoint) error {
	if point.ID == uuid.Nil {
		return fmt.Errorf("pickup point id is required")
	}
	if err := validatePoint(point); err != nil {
		return err
	}

	return uc.repo.UpdatePoint(ctx, point)
}

// DeletePoint removes a pickup point
func (uc *PlannerUC) DeletePoint(ctx context.Context, id string) error {
	pointID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid pickup point id: %w", err)
	}

	return uc.repo.DeletePoint(ctx, pointID)
}

func validatePoint(point *models.PickupPoint) error {
	if point.Name == "" {
		return fmt.Errorf("pickup point name is required")
	}
	if point.Latitude < -90 || point.Latitude > 90 {
		return fmt.Errorf("latitude out of range")
	}
	if point.Longitude < -180 || point.Longitude > 180 {
		return fmt.Errorf("longitude out of range")
	}
	if point.Quantity != nil && *point.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	return nil
}
