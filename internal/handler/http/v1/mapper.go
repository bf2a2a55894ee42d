package v1

import "github.com/fieldops/visit_tracking_system/internal/models"

// DTOToGeoPoint преобразует координаты запроса в доменную модель (nil остается nil)
func DTOToGeoPoint(dto *GeoPointDTO) *models.GeoPoint {
	if dto == nil {
		return nil
	}
	return &models.GeoPoint{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

// GeoPointToDTO преобразует доменную точку в DTO для ответа
func GeoPointToDTO(point *models.GeoPoint) *GeoPointDTO {
	if point == nil {
		return nil
	}
	return &GeoPointDTO{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}
}

// VerdictToResponse преобразует вердикт геозоны в DTO для ответа
func VerdictToResponse(verdict *models.GeofenceVerdict) *VerdictResponse {
	if verdict == nil {
		return nil
	}
	return &VerdictResponse{
		Status:          string(verdict.Status),
		DistanceMeters:  verdict.DistanceMeters,
		ThresholdMeters: verdict.ThresholdMeters,
		OverrideAllowed: verdict.OverrideAllowed,
		Message:         verdict.Message,
	}
}

// ModelToVisitResponse преобразует доменную модель визита в DTO для ответа
func ModelToVisitResponse(model *models.Visit) *VisitResponse {
	return &VisitResponse{
		ID:               model.ID,
		WorkerID:         model.WorkerID,
		PropertyID:       model.PropertyID,
		Status:           model.Status,
		CheckInAt:        model.CheckInAt,
		CheckInLocation:  GeoPointToDTO(model.CheckInLocation),
		CheckInVerdict:   VerdictToResponse(model.CheckInVerdict),
		CheckOutAt:       model.CheckOutAt,
		CheckOutLocation: GeoPointToDTO(model.CheckOutLocation),
		CheckOutVerdict:  VerdictToResponse(model.CheckOutVerdict),
		OverrideReason:   model.OverrideReason,
		VisitSummary:     model.VisitSummary,
		PhotoURLs:        model.PhotoURLs,
	}
}

// ModelsToVisitResponses преобразует слайс визитов в слайс DTO
func ModelsToVisitResponses(visits []*models.Visit) []*VisitResponse {
	responses := make([]*VisitResponse, len(visits))
	for i, visit := range visits {
		responses[i] = ModelToVisitResponse(visit)
	}
	return responses
}

// ModelToAuditEntryResponse преобразует запись журнала override в DTO
func ModelToAuditEntryResponse(entry *models.OverrideAuditEntry) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:         entry.ID,
		VisitID:    entry.VisitID,
		Stage:      string(entry.Stage),
		Verdict:    VerdictToResponse(entry.Verdict),
		Reason:     entry.Reason,
		RecordedAt: entry.RecordedAt,
	}
}

// ModelsToAuditEntryResponses преобразует слайс записей журнала в слайс DTO
func ModelsToAuditEntryResponses(entries []*models.OverrideAuditEntry) []*AuditEntryResponse {
	responses := make([]*AuditEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToAuditEntryResponse(entry)
	}
	return responses
}

// DTOToPropertyModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToPropertyModel(dto any) *models.Property {
	switch v := dto.(type) {
	case CreatePropertyRequest:
		return &models.Property{
			Code:                  v.Code,
			Name:                  v.Name,
			Center:                DTOToGeoPoint(v.Center),
			RadiusMeters:          v.RadiusMeters,
			ManualOverrideAllowed: v.ManualOverrideAllowed,
		}
	case UpdatePropertyRequest:
		return &models.Property{
			Name:                  v.Name,
			Center:                DTOToGeoPoint(v.Center),
			RadiusMeters:          v.RadiusMeters,
			ManualOverrideAllowed: v.ManualOverrideAllowed,
			Status:                v.Status,
		}
	}
	return nil
}

// ModelToPropertyResponse преобразует доменную модель объекта в DTO для ответа
func ModelToPropertyResponse(model *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:                    model.ID,
		Code:                  model.Code,
		Name:                  model.Name,
		Center:                GeoPointToDTO(model.Center),
		RadiusMeters:          model.RadiusMeters,
		ManualOverrideAllowed: model.ManualOverrideAllowed,
		Status:                model.Status,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

// ModelsToPropertyResponses преобразует слайс объектов в слайс DTO
func ModelsToPropertyResponses(properties []*models.Property) []*PropertyResponse {
	responses := make([]*PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ModelToPropertyResponse(property)
	}
	return responses
}
