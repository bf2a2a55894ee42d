package geofence

import (
	"fmt"
	"math"

	"github.com/fieldops/visit_tracking_system/internal/models"
)

const (
	// Средний радиус Земли в метрах
	earthRadiusMeters = 6371000.0

	// SoftGraceMeters - фиксированная буферная зона сверх радиуса геозоны,
	// компенсирующая погрешность бытового GPS. Не настраивается.
	SoftGraceMeters = 50.0
)

// Distance возвращает расстояние по большому кругу между двумя точками в метрах
// (формула гаверсинуса). Детерминированная, без побочных эффектов;
// валидация диапазонов координат лежит на вызывающей стороне.
func Distance(a, b models.GeoPoint) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Evaluate классифицирует позицию работника относительно геозоны объекта.
// Чистая функция: при равенстве расстояния порогу выбирается более мягкая категория.
func Evaluate(workerLocation models.GeoPoint, property *models.Property) *models.GeofenceVerdict {
	if property.Center == nil {
		return &models.GeofenceVerdict{
			Status:          models.VerdictOK,
			DistanceMeters:  0,
			ThresholdMeters: 0,
			OverrideAllowed: property.ManualOverrideAllowed,
			Message:         "no geofence configured",
		}
	}

	d := Distance(workerLocation, *property.Center)
	softThreshold := property.RadiusMeters + SoftGraceMeters

	verdict := &models.GeofenceVerdict{
		DistanceMeters:  d,
		ThresholdMeters: property.RadiusMeters,
		OverrideAllowed: property.ManualOverrideAllowed,
	}

	switch {
	case d <= property.RadiusMeters:
		verdict.Status = models.VerdictOK
		verdict.Message = "inside geofence"
	case d <= softThreshold:
		verdict.Status = models.VerdictSoftWarning
		verdict.ThresholdMeters = softThreshold
		verdict.Message = fmt.Sprintf("%.0fm from property, within %.0fm grace band", d, SoftGraceMeters)
	default:
		verdict.Status = models.VerdictHardBlock
		verdict.ThresholdMeters = softThreshold
		verdict.Message = fmt.Sprintf("%.0fm from property, allowed maximum is %.0fm", d, softThreshold)
	}
	return verdict
}

// MissingLocation возвращает вердикт для случая, когда клиент не передал координаты.
// Трактуется как жесткая блокировка: ядро не пытается само получить геолокацию.
func MissingLocation(property *models.Property) *models.GeofenceVerdict {
	return &models.GeofenceVerdict{
		Status:          models.VerdictHardBlock,
		DistanceMeters:  0,
		ThresholdMeters: property.RadiusMeters + SoftGraceMeters,
		OverrideAllowed: property.ManualOverrideAllowed,
		Message:         "no location available",
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
