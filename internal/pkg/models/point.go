package models

import (
	"time"

	"github.com/google/uuid"
)

// PickupPoint represents a location where passengers or goods are collected.
// PersonIDs carries comma-joined external person identifiers; the solver
// input expands them into the stop id so the view layer can parse them back.
type PickupPoint struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Quantity  *int      `json:"quantity,omitempty" db:"quantity"`
	PersonIDs *string   `json:"person_ids,omitempty" db:"person_ids"`
	GroupTag  *string   `json:"group_tag,omitempty" db:"group_tag"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
