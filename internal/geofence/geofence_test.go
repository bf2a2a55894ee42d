package geofence

import (
	"testing"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointNorthOf возвращает точку, смещенную на meters метров к северу от origin.
// Смещение вдоль меридиана, поэтому гаверсинус возвращает ровно meters.
func pointNorthOf(origin models.GeoPoint, meters float64) models.GeoPoint {
	return models.GeoPoint{
		Latitude:  origin.Latitude + (meters/earthRadiusMeters)*180/3.141592653589793,
		Longitude: origin.Longitude,
	}
}

func TestDistance_SamePoint(t *testing.T) {
	p := models.GeoPoint{Latitude: 40.0, Longitude: -73.0}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownOffset(t *testing.T) {
	origin := models.GeoPoint{Latitude: 40.0, Longitude: -73.0}
	target := pointNorthOf(origin, 100)
	assert.InDelta(t, 100.0, Distance(origin, target), 0.001)
}

func TestDistance_Symmetric(t *testing.T) {
	a := models.GeoPoint{Latitude: 55.75, Longitude: 37.61}
	b := models.GeoPoint{Latitude: 55.76, Longitude: 37.63}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestEvaluate_Buckets(t *testing.T) {
	center := models.GeoPoint{Latitude: 40.0, Longitude: -73.0}
	property := &models.Property{
		Center:                &center,
		RadiusMeters:          30,
		ManualOverrideAllowed: true,
	}

	tests := []struct {
		name           string
		distanceMeters float64
		wantStatus     models.VerdictStatus
	}{
		{"at exact center", 0, models.VerdictOK},
		{"inside radius", 20, models.VerdictOK},
		{"inside grace band", 60, models.VerdictSoftWarning},
		{"far outside", 100, models.VerdictHardBlock},
		{"well outside", 5000, models.VerdictHardBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := pointNorthOf(center, tt.distanceMeters)
			verdict := Evaluate(worker, property)
			assert.Equal(t, tt.wantStatus, verdict.Status)
			assert.InDelta(t, tt.distanceMeters, verdict.DistanceMeters, 0.001)
			assert.True(t, verdict.OverrideAllowed)
		})
	}
}

func TestEvaluate_TiesFavorPermissiveBucket(t *testing.T) {
	center := models.GeoPoint{Latitude: 40.0, Longitude: -73.0}
	worker := pointNorthOf(center, 200)
	d := Distance(worker, center)

	// расстояние ровно на границе радиуса - OK
	atRadius := Evaluate(worker, &models.Property{Center: &center, RadiusMeters: d})
	assert.Equal(t, models.VerdictOK, atRadius.Status)

	// расстояние ровно на границе буферной зоны - SOFT_WARNING
	atSoft := Evaluate(worker, &models.Property{Center: &center, RadiusMeters: d - SoftGraceMeters})
	assert.Equal(t, models.VerdictSoftWarning, atSoft.Status)
}

func TestEvaluate_NoGeofenceConfigured(t *testing.T) {
	property := &models.Property{Center: nil, RadiusMeters: 30, ManualOverrideAllowed: false}

	// любая позиция проходит, если геозона не настроена
	verdict := Evaluate(models.GeoPoint{Latitude: -89.9, Longitude: 179.9}, property)
	require.Equal(t, models.VerdictOK, verdict.Status)
	assert.Equal(t, 0.0, verdict.DistanceMeters)
	assert.Equal(t, "no geofence configured", verdict.Message)
}

func TestEvaluate_OverrideAllowedMirrorsProperty(t *testing.T) {
	center := models.GeoPoint{Latitude: 40.0, Longitude: -73.0}
	worker := pointNorthOf(center, 500)

	blocked := Evaluate(worker, &models.Property{Center: &center, RadiusMeters: 30, ManualOverrideAllowed: false})
	require.Equal(t, models.VerdictHardBlock, blocked.Status)
	assert.False(t, blocked.OverrideAllowed)
}

func TestMissingLocation(t *testing.T) {
	property := &models.Property{RadiusMeters: 30, ManualOverrideAllowed: true}
	verdict := MissingLocation(property)
	assert.Equal(t, models.VerdictHardBlock, verdict.Status)
	assert.Equal(t, "no location available", verdict.Message)
	assert.True(t, verdict.OverrideAllowed)
}
