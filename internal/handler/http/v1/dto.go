package v1

import (
	"time"

	"github.com/google/uuid"
)

// GeoPointDTO координаты в градусах (WGS84)
// @Description Координаты в градусах (WGS84)
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CheckInRequest DTO для check-in работника на объекте
// @Description DTO для check-in работника на объекте
type CheckInRequest struct {
	WorkerID       string       `json:"worker_id" validate:"required,min=1,max=64"`
	PropertyCode   string       `json:"property_code" validate:"required,min=1,max=64"`
	Location       *GeoPointDTO `json:"location,omitempty"`
	OverrideReason string       `json:"override_reason,omitempty" validate:"max=1000"`
}

// CheckOutRequest DTO для check-out с открытого визита
// @Description DTO для check-out с открытого визита
type CheckOutRequest struct {
	Location       *GeoPointDTO `json:"location,omitempty"`
	OverrideReason string       `json:"override_reason,omitempty" validate:"max=1000"`
	VisitSummary   string       `json:"visit_summary,omitempty" validate:"max=4000"`
	PhotoURLs      []string     `json:"photo_urls,omitempty" validate:"omitempty,dive,url"`
}

// VerdictResponse DTO вердикта проверки геозоны
// @Description DTO вердикта проверки геозоны
type VerdictResponse struct {
	Status          string  `json:"status"`
	DistanceMeters  float64 `json:"distance_meters"`
	ThresholdMeters float64 `json:"threshold_meters"`
	OverrideAllowed bool    `json:"override_allowed"`
	Message         string  `json:"message,omitempty"`
}

// VisitResponse DTO для ответа с информацией о визите
// @Description DTO для ответа с информацией о визите
type VisitResponse struct {
	ID               uuid.UUID        `json:"id"`
	WorkerID         string           `json:"worker_id"`
	PropertyID       uuid.UUID        `json:"property_id"`
	Status           string           `json:"status"`
	CheckInAt        time.Time        `json:"check_in_at"`
	CheckInLocation  *GeoPointDTO     `json:"check_in_location,omitempty"`
	CheckInVerdict   *VerdictResponse `json:"check_in_verdict,omitempty"`
	CheckOutAt       *time.Time       `json:"check_out_at,omitempty"`
	CheckOutLocation *GeoPointDTO     `json:"check_out_location,omitempty"`
	CheckOutVerdict  *VerdictResponse `json:"check_out_verdict,omitempty"`
	OverrideReason   string           `json:"override_reason,omitempty"`
	VisitSummary     string           `json:"visit_summary,omitempty"`
	PhotoURLs        []string         `json:"photo_urls,omitempty"`
}

// RejectionResponse DTO структурированного отказа, который клиент должен разрешить
// (повторить с новой координатой, указать причину override или отказаться)
// @Description DTO структурированного отказа геозоны
type RejectionResponse struct {
	RejectionKind   string           `json:"rejection_kind"`
	Verdict         *VerdictResponse `json:"verdict,omitempty"`
	ExistingVisitID *uuid.UUID       `json:"existing_visit_id,omitempty"`
	Error           string           `json:"error"`
}

// AuditEntryResponse DTO записи журнала override
// @Description DTO записи журнала override
type AuditEntryResponse struct {
	ID         int64            `json:"id"`
	VisitID    uuid.UUID        `json:"visit_id"`
	Stage      string           `json:"stage"`
	Verdict    *VerdictResponse `json:"verdict,omitempty"`
	Reason     string           `json:"reason"`
	RecordedAt time.Time        `json:"recorded_at"`
}

// CreatePropertyRequest DTO для создания объекта с геозоной
// @Description DTO для создания объекта с геозоной
type CreatePropertyRequest struct {
	Code                  string       `json:"code" validate:"required,min=2,max=64"`
	Name                  string       `json:"name" validate:"required,min=2,max=255"`
	Center                *GeoPointDTO `json:"center,omitempty"`
	RadiusMeters          float64      `json:"radius_meters" validate:"omitempty,gt=0"`
	ManualOverrideAllowed bool         `json:"manual_override_allowed"`
}

// UpdatePropertyRequest DTO для обновления объекта
// @Description DTO для обновления объекта
type UpdatePropertyRequest struct {
	Name                  string       `json:"name" validate:"required,min=2,max=255"`
	Center                *GeoPointDTO `json:"center,omitempty"`
	RadiusMeters          float64      `json:"radius_meters" validate:"omitempty,gt=0"`
	ManualOverrideAllowed bool         `json:"manual_override_allowed"`
	Status                string       `json:"status" validate:"required,oneof=active inactive"`
}

// PropertyResponse DTO для ответа с информацией об объекте
// @Description DTO для ответа с информацией об объекте
type PropertyResponse struct {
	ID                    uuid.UUID    `json:"id"`
	Code                  string       `json:"code"`
	Name                  string       `json:"name"`
	Center                *GeoPointDTO `json:"center,omitempty"`
	RadiusMeters          float64      `json:"radius_meters"`
	ManualOverrideAllowed bool         `json:"manual_override_allowed"`
	Status                string       `json:"status"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	WorkerCount int `json:"worker_count"`
}
