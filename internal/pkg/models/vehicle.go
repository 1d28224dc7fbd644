package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a vehicle available to the route optimizer
type Vehicle struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Capacity       int       `json:"capacity" db:"capacity"`
	MaxDistanceKm  float64   `json:"max_distance_km" db:"max_distance_km"`
	StartLatitude  *float64  `json:"start_latitude,omitempty" db:"start_latitude"`
	StartLongitude *float64  `json:"start_longitude,omitempty" db:"start_longitude"`
	EndLatitude    *float64  `json:"end_latitude,omitempty" db:"end_latitude"`
	EndLongitude   *float64  `json:"end_longitude,omitempty" db:"end_longitude"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
