package planner

import (
	"context"

	"github.com/radityabs/rutevis/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/radityabs/rutevis/services/planner PlannerUC

// PlannerUC represents the planner usecase interface
type PlannerUC interface {
	// operator auth
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// pickup points
	CreatePoint(ctx context.Context, point *models.PickupPoint) error
	GetPoint(ctx context.Context, id string) (*models.PickupPoint, error)
	ListPoints(ctx context.Context) ([]models.PickupPoint, error)
	UpdatePoint(ctx context.Context, point *models.PickupPoint) error
	DeletePoint(ctx context.Context, id string) error

	// vehicles
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error

	// optimization runs
	RunOptimization(ctx context.Context, req *models.OptimizationRequest) (*models.Optimization, error)
	ListOptimizations(ctx context.Context) ([]models.Optimization, error)
	GetOptimization(ctx context.Context, id string) (*models.Optimization, error)

	// route views and exports
	BuildMapView(ctx context.Context, id string, roadGeometry bool) (*models.MapView, error)
	ExportExcel(ctx context.Context, id string) ([]byte, string, error)
	ExportKML(ctx context.Context, id string) ([]byte, string, error)
}
