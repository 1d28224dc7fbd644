package models

import (
	"time"

	"github.com/google/uuid"
)

// OptimizationCompletedEvent is published to NATS when a solver run reaches
// a terminal state
type OptimizationCompletedEvent struct {
	OptimizationID      uuid.UUID          `json:"optimization_id"`
	Status              OptimizationStatus `json:"status"`
	RouteCount          int                `json:"route_count"`
	TotalDistanceMeters float64            `json:"total_distance_meters"`
	CompletedAt         time.Time          `json:"completed_at"`
}
