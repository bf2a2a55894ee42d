package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisitStatusOpen   = "open"
	VisitStatusClosed = "closed"
)

// Visit - один цикл check-in/check-out работника на объекте.
// Для одного работника в любой момент времени может существовать не более одного визита со статусом open.
type Visit struct {
	ID               uuid.UUID        `json:"id"`
	WorkerID         string           `json:"worker_id"`
	PropertyID       uuid.UUID        `json:"property_id"`
	Status           string           `json:"status"`
	CheckInAt        time.Time        `json:"check_in_at"`
	CheckInLocation  *GeoPoint        `json:"check_in_location,omitempty"`
	CheckInVerdict   *GeofenceVerdict `json:"check_in_verdict"`
	CheckOutAt       *time.Time       `json:"check_out_at,omitempty"`
	CheckOutLocation *GeoPoint        `json:"check_out_location,omitempty"`
	CheckOutVerdict  *GeofenceVerdict `json:"check_out_verdict,omitempty"`
	OverrideReason   string           `json:"override_reason,omitempty"`
	VisitSummary     string           `json:"visit_summary,omitempty"`
	PhotoURLs        []string         `json:"photo_urls,omitempty"`
}
