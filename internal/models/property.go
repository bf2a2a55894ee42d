package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID                    uuid.UUID `json:"id"`
	Code                  string    `json:"code"`
	Name                  string    `json:"name"`
	Center                *GeoPoint `json:"center,omitempty"` // nil означает, что геозона для объекта не настроена
	RadiusMeters          float64   `json:"radius_meters"`
	ManualOverrideAllowed bool      `json:"manual_override_allowed"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
