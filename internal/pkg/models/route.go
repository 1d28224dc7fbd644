package models

import (
	"github.com/google/uuid"
)

// Route is one vehicle's ordered stop sequence as produced by the external
// optimizer. Routes are written once when a run completes and are read-only
// afterwards. VehicleID is the identifier string the solver returned; it is
// not resolved against the vehicles table here.
type Route struct {
	ID              uuid.UUID `json:"id" db:"id"`
	OptimizationID  uuid.UUID `json:"optimization_id" db:"optimization_id"`
	VehicleID       string    `json:"vehicle_id" db:"vehicle_id"`
	Name            string    `json:"name" db:"name"`
	GroupTag        *string   `json:"group_tag,omitempty" db:"group_tag"`
	DistanceMeters  float64   `json:"distance_meters" db:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds" db:"duration_seconds"`
	Stops           []Stop    `json:"stops" db:"-"`
}

// Stop is one entry in a route's stop sequence. ExternalID follows the
// solver's ad hoc convention: vehicle sentinels end in "-start"/"-end" and
// person-expanded point ids carry "__person_<id>" substrings.
type Stop struct {
	RouteID    uuid.UUID `json:"-" db:"route_id"`
	Seq        int       `json:"seq" db:"seq"`
	ExternalID string    `json:"external_id" db:"external_id"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Latitude   float64   `json:"latitude" db:"latitude"`
}
