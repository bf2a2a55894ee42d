package models

// VerdictStatus - результат классификации позиции работника относительно геозоны
type VerdictStatus string

const (
	VerdictOK          VerdictStatus = "ok"
	VerdictSoftWarning VerdictStatus = "soft_warning"
	VerdictHardBlock   VerdictStatus = "hard_block"
)

// GeofenceVerdict - вычисленный вердикт проверки геозоны.
// Не хранится отдельно, а прикрепляется к визиту, который его породил.
type GeofenceVerdict struct {
	Status          VerdictStatus `json:"status"`
	DistanceMeters  float64       `json:"distance_meters"`
	ThresholdMeters float64       `json:"threshold_meters"`
	OverrideAllowed bool          `json:"override_allowed"`
	Message         string        `json:"message,omitempty"`
}
