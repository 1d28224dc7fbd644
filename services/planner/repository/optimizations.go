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

// CreateOptimization inserts a new optimization run record
func (r *PlannerRepo) CreateOptimization(ctx context.Context, opt *models.Optimization) error {
	if opt.ID == uuid.Nil {
		opt.ID = uuid.New()
	}
	if opt.RequestedAt.IsZero() {
		opt.RequestedAt = time.Now()
	}

	query := `
		INSERT INTO optimizations (id, external_run_id, status, group_tag,
			requested_at, completed_at
		) VALUES (:id, :external_run_id, :status, :group_tag,
			:requested_at, :completed_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, opt)
	if err != nil {
		return fmt.Errorf("failed to insert optimization: %w", err)
	}

	return nil
}

// UpdateOptimizationStatus transitions an optimization run to a new status
func (r *PlannerRepo) UpdateOptimizationStatus(ctx context.Context, id uuid.UUID, status models.OptimizationStatus, completedAt *time.Time) error {
	query := `
		UPDATE optimizations
		SET status = $2, completed_at = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, status, completedAt)
	if err != nil {
		return fmt.Errorf("failed to update optimization status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("optimization not found")
	}

	return nil
}

// ListOptimizations retrieves all optimization runs, most recent first,
// with their routes attached
func (r *PlannerRepo) ListOptimizations(ctx context.Context) ([]models.Optimization, error) {
	query := `
		SELECT id, external_run_id, status, group_tag, requested_at, completed_at
		FROM optimizations
		ORDER BY requested_at DESC
	`

	var opts []models.Optimization
	if err := r.db.SelectContext(ctx, &opts, query); err != nil {
		return nil, fmt.Errorf("failed to list optimizations: %w", err)
	}

	for i := range opts {
		routes, err := r.GetRoutes(ctx, opts[i].ID)
		if err != nil {
			return nil, err
		}
		opts[i].Routes = routes
	}

	return opts, nil
}

// GetOptimization retrieves one optimization run with its routes
func (r *PlannerRepo) GetOptimization(ctx context.Context, id uuid.UUID) (*models.Optimization, error) {
	query := `
		SELECT id, external_run_id, status, group_tag, requested_at, completed_at
		FROM optimizations
		WHERE id = $1
	`

	var opt models.Optimization
	err := r.db.GetContext(ctx, &opt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("optimization not found")
		}
		return nil, fmt.Errorf("failed to get optimization: %w", err)
	}

	routes, err := r.GetRoutes(ctx, opt.ID)
	if err != nil {
		return nil, err
	}
	opt.Routes = routes

	return &opt, nil
}
