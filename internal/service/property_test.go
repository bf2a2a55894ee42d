package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPropertyService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPropertyService(t *testing.T) (*propertyService, *mocks.MockPropertyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPropertyRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewPropertyService(repoMock, logger)
	return service.(*propertyService), repoMock
}

func TestCreateProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyToCreate := &models.Property{
		Code:         "PROP-042",
		Name:         "Склад Юго-Запад",
		Center:       &models.GeoPoint{Latitude: 55.65, Longitude: 37.48},
		RadiusMeters: 150,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Property) error {
			// Симулируем, что БД присвоила ID
			p.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateProperty(ctx, propertyToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "active", propertyToCreate.Status)
	assert.NotEqual(t, uuid.Nil, propertyToCreate.ID)
}

func TestCreateProperty_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyToCreate := &models.Property{Code: "PROP-042"}
	repoError := fmt.Errorf("дубликат кода")

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(repoError).Times(1)

	// Действие
	err := service.CreateProperty(ctx, propertyToCreate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create property")
}

func TestGetProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	expectedProperty := &models.Property{
		ID:   propertyID,
		Code: "PROP-001",
		Name: "Жилой комплекс Север",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(expectedProperty, nil).Times(1)

	// Действие
	property, err := service.GetProperty(ctx, propertyID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProperty, property)
}

func TestGetProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	property, err := service.GetProperty(ctx, propertyID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, property)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdateProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	propertyToUpdate := &models.Property{
		ID:           propertyID,
		Name:         "Обновленное имя",
		Center:       &models.GeoPoint{Latitude: 55.7, Longitude: 37.6},
		RadiusMeters: 200,
		Status:       "active",
	}
	existingProperty := &models.Property{
		ID:   propertyID,
		Code: "PROP-001",
		Name: "Старое имя",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(existingProperty, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(ctx context.Context, p *models.Property) {
			// Код объекта неизменяем, остальные поля берутся из запроса
			assert.Equal(t, "PROP-001", p.Code)
			assert.Equal(t, "Обновленное имя", p.Name)
			assert.Equal(t, float64(200), p.RadiusMeters)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePropertyCache(ctx, "PROP-001").Return(nil).Times(1)

	// Действие
	err := service.UpdateProperty(ctx, propertyToUpdate)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	propertyToUpdate := &models.Property{ID: propertyID}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	err := service.UpdateProperty(ctx, propertyToUpdate)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdateProperty_CacheInvalidationFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	propertyToUpdate := &models.Property{ID: propertyID, Name: "Имя"}
	existingProperty := &models.Property{ID: propertyID, Code: "PROP-001"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(existingProperty, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePropertyCache(ctx, "PROP-001").Return(fmt.Errorf("redis недоступен")).Times(1)

	// Действие
	err := service.UpdateProperty(ctx, propertyToUpdate)

	// Проверки: сбой кеша не откатывает обновление
	require.NoError(t, err)
}

func TestDeactivateProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	existingProperty := &models.Property{ID: propertyID, Code: "PROP-001"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(existingProperty, nil).Times(1)
	repoMock.EXPECT().Deactivate(ctx, propertyID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePropertyCache(ctx, "PROP-001").Return(nil).Times(1)

	// Действие
	err := service.DeactivateProperty(ctx, propertyID)

	// Проверки
	require.NoError(t, err)
}

func TestDeactivateProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	err := service.DeactivateProperty(ctx, propertyID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestListProperties_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	page, pageSize := 1, 10
	expectedProperties := []*models.Property{
		{ID: uuid.New(), Code: "PROP-001"},
		{ID: uuid.New(), Code: "PROP-002"},
	}

	// Ожидания
	repoMock.EXPECT().ListProperties(ctx, page, pageSize).Return(expectedProperties, nil).Times(1)

	// Действие
	properties, err := service.ListProperties(ctx, page, pageSize)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProperties, properties)
}

func TestListProperties_ClampsPagination(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()

	// Ожидания: некорректные значения приводятся к дефолтам
	repoMock.EXPECT().ListProperties(ctx, 1, 20).Return(nil, nil).Times(1)

	// Действие
	_, err := service.ListProperties(ctx, 0, 500)

	// Проверки
	require.NoError(t, err)
}
