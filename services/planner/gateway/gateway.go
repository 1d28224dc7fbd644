package gateway

import (
	"context"

	"github.com/radityabs/rutevis/internal/pkg/models"
)

// StartRun forwards to the Nextmv client
func (g *PlannerGW) StartRun(ctx context.Context, input *models.SolverInput) (string, error) {
	return g.nextmvClient.StartRun(ctx, input)
}

// WaitForRun forwards to the Nextmv client
func (g *PlannerGW) WaitForRun(ctx context.Context, runID string) (*models.SolverOutput, error) {
	return g.nextmvClient.WaitForRun(ctx, runID)
}

// GetDirections forwards to the Mapbox client
func (g *PlannerGW) GetDirections(ctx context.Context, waypoints [][]float64) (*models.DirectionsResult, error) {
	return g.mapboxClient.GetDirections(ctx, waypoints)
}

// PublishOptimizationCompleted forwards to the NATS gateway implementation
func (g *PlannerGW) PublishOptimizationCompleted(ctx context.Context, event *models.OptimizationCompletedEvent) error {
	return g.natsGateway.PublishOptimizationCompleted(ctx, event)
}
