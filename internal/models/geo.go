package models

// GeoPoint представляет географическую точку в градусах (WGS84)
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
