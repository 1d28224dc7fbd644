package planner

import (
	"context"

	"github.com/radityabs/rutevis/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/radityabs/rutevis/services/planner PlannerGW

// PlannerGW defines the planner gateways interface
type PlannerGW interface {
	// Solver gateway (Nextmv cloud API)
	StartRun(ctx context.Context, input *models.SolverInput) (string, error)
	WaitForRun(ctx context.Context, runID string) (*models.SolverOutput, error)

	// Directions gateway (Mapbox Directions API)
	GetDirections(ctx context.Context, waypoints [][]float64) (*models.DirectionsResult, error)

	// NATS gateway
	PublishOptimizationCompleted(ctx context.Context, event *models.OptimizationCompletedEvent) error
}
