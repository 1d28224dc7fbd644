package models

import (
	"github.com/google/uuid"
)

// Geometry sources for a rendered route
const (
	GeometryStraight = "straight"
	GeometryRoad     = "road"
)

// MapView is the view model the map client renders for one optimization run
type MapView struct {
	OptimizationID uuid.UUID   `json:"optimization_id"`
	Routes         []RouteView `json:"routes"`
}

// RouteView is one vehicle's route prepared for display: distances in km,
// durations in minutes, sentinels stripped from the stop list.
type RouteView struct {
	VehicleID       string      `json:"vehicle_id"`
	Name            string      `json:"name"`
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
	GeometrySource  string      `json:"geometry_source"`
	Geometry        [][]float64 `json:"geometry"`
	Stops           []StopView  `json:"stops"`
}

// StopView is one visited pickup point with the person ids parsed back out
// of the solver's stop id encoding
type StopView struct {
	Order     int      `json:"order"`
	PointID   string   `json:"point_id"`
	PersonIDs []string `json:"person_ids,omitempty"`
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
}
