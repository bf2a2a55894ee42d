package service

import (
	"context"
	"fmt"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PropertyRepository определяет контракт для работы с бд объектов и их геозон
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	GetByCode(ctx context.Context, code string) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error)
	GetPropertyFromCache(ctx context.Context, code string) (*models.Property, error)
	SetPropertyCache(ctx context.Context, property *models.Property) error
	InvalidatePropertyCache(ctx context.Context, code string) error
}

// PropertyService определяет контракт для администрирования объектов и их геозон
type PropertyService interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	UpdateProperty(ctx context.Context, property *models.Property) error
	DeactivateProperty(ctx context.Context, id uuid.UUID) error
	ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error)
}

type propertyService struct {
	repo   PropertyRepository
	logger *logrus.Logger
}

func NewPropertyService(repo PropertyRepository, logger *logrus.Logger) PropertyService {
	return &propertyService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProperty создает объект с геозоной
func (s *propertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "property",
		"method":  "CreateProperty",
		"code":    property.Code,
	})
	log.Info("Attempting to create a new property")

	property.Status = "active"
	if err := s.repo.Create(ctx, property); err != nil {
		log.WithError(err).Error("Failed to create property in repository")
		return fmt.Errorf("service: could not create property: %w", err)
	}

	log.WithField("property_id", property.ID).Info("Property created successfully")
	return nil
}

// GetProperty получает объект по ID
func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "GetProperty",
		"property_id": id,
	})

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get property from repository")
		return nil, err
	}
	return property, nil
}

// UpdateProperty обновляет объект и инвалидирует его кеш
func (s *propertyService) UpdateProperty(ctx context.Context, property *models.Property) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "UpdateProperty",
		"property_id": property.ID,
	})
	log.Info("Attempting to update property")

	existing, err := s.repo.GetByID(ctx, property.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent property")
		return err
	}

	existing.Name = property.Name
	existing.Center = property.Center
	existing.RadiusMeters = property.RadiusMeters
	existing.ManualOverrideAllowed = property.ManualOverrideAllowed
	existing.Status = property.Status

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update property in repository")
		return fmt.Errorf("service: could not update property: %w", err)
	}

	if err := s.repo.InvalidatePropertyCache(ctx, existing.Code); err != nil {
		log.WithError(err).Warn("Failed to invalidate property cache")
	}
	log.Info("Property updated successfully")
	return nil
}

// DeactivateProperty деактивирует объект
func (s *propertyService) DeactivateProperty(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "DeactivateProperty",
		"property_id": id,
	})
	log.Info("Attempting to deactivate property")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent property")
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate property in repository")
		return fmt.Errorf("service: could not deactivate property: %w", err)
	}

	if err := s.repo.InvalidatePropertyCache(ctx, existing.Code); err != nil {
		log.WithError(err).Warn("Failed to invalidate property cache")
	}
	log.Info("Property deactivated successfully")
	return nil
}

// ListProperties возвращает список объектов с пагинацией
func (s *propertyService) ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "property",
		"method":    "ListProperties",
		"page":      page,
		"page_size": pageSize,
	})

	properties, err := s.repo.ListProperties(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list properties from repository")
		return nil, fmt.Errorf("service: could not list properties: %w", err)
	}

	log.WithField("count", len(properties)).Info("Properties listed successfully")
	return properties, nil
}
