package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/radityabs/rutevis/services/planner PlannerRepo

// PlannerRepo represents the planner repository interface
type PlannerRepo interface {
	// pickup points
	CreatePoint(ctx context.Context, point *models.PickupPoint) error
	GetPoint(ctx context.Context, id uuid.UUID) (*models.PickupPoint, error)
	ListPoints(ctx context.Context) ([]models.PickupPoint, error)
	ListPointsByGroup(ctx context.Context, groupTag string) ([]models.PickupPoint, error)
	UpdatePoint(ctx context.Context, point *models.PickupPoint) error
	DeletePoint(ctx context.Context, id uuid.UUID) error

	// vehicles
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	// optimization runs and their routes
	CreateOptimization(ctx context.Context, opt *models.Optimization) error
	UpdateOptimizationStatus(ctx context.Context, id uuid.UUID, status models.OptimizationStatus, completedAt *time.Time) error
	ListOptimizations(ctx context.Context) ([]models.Optimization, error)
	GetOptimization(ctx context.Context, id uuid.UUID) (*models.Optimization, error)
	SaveRoutes(ctx context.Context, optimizationID uuid.UUID, routes []models.Route) error
	GetRoutes(ctx context.Context, optimizationID uuid.UUID) ([]models.Route, error)

	// directions cache
	GetCachedDirections(ctx context.Context, key string) (*models.DirectionsResult, error)
	CacheDirections(ctx context.Context, key string, result *models.DirectionsResult) error
}
