package gateway

import (
	"github.com/radityabs/rutevis/internal/pkg/models"
	natspkg "github.com/radityabs/rutevis/internal/pkg/nats"
	"github.com/radityabs/rutevis/services/planner"
	gateway_http "github.com/radityabs/rutevis/services/planner/gateway/http"
	gateway_nats "github.com/radityabs/rutevis/services/planner/gateway/nats"
)

// PlannerGW handles planner gateway operations
type PlannerGW struct {
	nextmvClient *gateway_http.NextmvClient
	mapboxClient *gateway_http.MapboxClient
	natsGateway  *gateway_nats.NATSGateway
}

// NewPlannerGW creates a new gateway instance with the solver, directions,
// and NATS clients
func NewPlannerGW(cfg *models.Config, natsClient *natspkg.Client) planner.PlannerGW {
	return &PlannerGW{
		nextmvClient: gateway_http.NewNextmvClient(cfg.Nextmv),
		mapboxClient: gateway_http.NewMapboxClient(cfg.Mapbox),
		natsGateway:  gateway_nats.NewNATSGateway(natsClient),
	}
}
