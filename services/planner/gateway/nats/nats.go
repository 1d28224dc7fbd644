package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/radityabs/rutevis/internal/pkg/constants"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	natspkg "github.com/radityabs/rutevis/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the planner service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishOptimizationCompleted publishes an optimization completed event
func (g *NATSGateway) PublishOptimizationCompleted(ctx context.Context, event *models.OptimizationCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal optimization completed event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectOptimizationCompleted, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish optimization completed event",
			logger.String("optimization_id", event.OptimizationID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish optimization completed event: %w", err)
	}

	logger.InfoCtx(ctx, "Published optimization completed event",
		logger.String("optimization_id", event.OptimizationID.String()),
		logger.String("status", string(event.Status)),
		logger.Int("route_count", event.RouteCount))

	return nil
}
