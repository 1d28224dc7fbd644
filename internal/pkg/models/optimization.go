package models

import (
	"time"

	"github.com/google/uuid"
)

// OptimizationStatus represents the lifecycle state of a solver run
type OptimizationStatus string

const (
	OptimizationQueued    OptimizationStatus = "queued"
	OptimizationRunning   OptimizationStatus = "running"
	OptimizationSucceeded OptimizationStatus = "succeeded"
	OptimizationFailed    OptimizationStatus = "failed"
)

// Optimization is a grouping key correlating the routes produced by one
// solver invocation
type Optimization struct {
	ID            uuid.UUID          `json:"id" db:"id"`
	ExternalRunID string             `json:"external_run_id" db:"external_run_id"`
	Status        OptimizationStatus `json:"status" db:"status"`
	GroupTag      *string            `json:"group_tag,omitempty" db:"group_tag"`
	RequestedAt   time.Time          `json:"requested_at" db:"requested_at"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty" db:"completed_at"`
	Routes        []Route            `json:"routes,omitempty" db:"-"`
}

// OptimizationRequest is the payload for starting a new run. An empty
// GroupTag optimizes over all registered points and vehicles.
type OptimizationRequest struct {
	GroupTag *string `json:"group_tag,omitempty"`
}
