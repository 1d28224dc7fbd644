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

// CreatePoint inserts a new pickup point
func (r *PlannerRepo) CreatePoint(ctx context.Context, point *models.PickupPoint) error {
	point.ID = uuid.New()
	now := time.Now()
	point.CreatedAt = now
	point.UpdatedAt = now

	query := `
		INSERT INTO pickup_points (id, name, address, latitude, longitude,
			quantity, person_ids, group_tag, created_at, updated_at
		) VALUES (:id, :name, :address, :latitude, :longitude,
			:quantity, :person_ids, :group_tag, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, point)
	if err != nil {
		return fmt.Errorf("failed to insert pickup point: %w", err)
	}

	return nil
}

// GetPoint retrieves a pickup point by id
func (r *PlannerRepo) GetPoint(ctx context.Context, id uuid.UUID) (*models.PickupPoint, error) {
	query := `
		SELECT id, name, address, latitude, longitude, quantity, person_ids,
			group_tag, created_at, updated_at
		FROM pickup_points
		WHERE id = $1
	`

	var point models.PickupPoint
	err := r.db.GetContext(ctx, &point, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup point not found")
		}
		return nil, fmt.Errorf("failed to get pickup point: %w", err)
	}

	return &point, nil
}

// ListPoints retrieves all pickup points ordered by creation time
func (r *PlannerRepo) ListPoints(ctx context.Context) ([]models.PickupPoint, error) {
	query := `
		SELECT id, name, address, latitude, longitude, quantity, person_ids,
			group_tag, created_at, updated_at
		FROM pickup_points
		ORDER BY created_at
	`

	var points []models.PickupPoint
	if err := r.db.SelectContext(ctx, &points, query); err != nil {
		return nil, fmt.Errorf("failed to list pickup points: %w", err)
	}

	return points, nil
}

// ListPointsByGroup retrieves the pickup points tagged with the given group
func (r *PlannerRepo) ListPointsByGroup(ctx context.Context, groupTag string) ([]models.PickupPoint, error) {
	query := `
		SELECT id, name, address, latitude, longitude, quantity, person_ids,
			group_tag, created_at, updated_at
		FROM pickup_points
		WHERE group_tag = $1
		ORDER BY created_at
	`

	var points []models.PickupPoint
	if err := r.db.SelectContext(ctx, &points, query, groupTag); err != nil {
		return nil, fmt.Errorf("failed to list pickup points by group: %w", err)
	}

	return points, nil
}

// UpdatePoint updates an existing pickup point
func (r *PlannerRepo) UpdatePoint(ctx context.Context, point *models.PickupPoint) error {
	point.UpdatedAt = time.Now()

	query := `
		UPDATE pickup_points
		SET name = :name, address = :address, latitude = :latitude,
			longitude = :longitude, quantity = :quantity,
			person_ids = :person_ids, group_tag = :group_tag,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, point)
	if err != nil {
		return fmt.Errorf("failed to update pickup point: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("pickup point not found")
	}

	return nil
}

// DeletePoint removes a pickup point
func (r *PlannerRepo) DeletePoint(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pickup_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pickup point: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("pickup point not found")
	}

	return nil
}
