package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type PropertyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewPropertyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.PropertyRepository {
	return &PropertyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const propertyColumns = `
	id,
	code,
	name,
	ST_Y(center::geometry) as center_lat,
	ST_X(center::geometry) as center_lon,
	radius_meters,
	manual_override_allowed,
	status,
	created_at,
	updated_at
`

// Create создает новый объект с геозоной в бд
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (code, name, center, radius_meters, manual_override_allowed, status)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	lon, lat := geoPointArgs(property.Center)
	err := r.db.QueryRow(ctx, query,
		property.Code,
		property.Name,
		lon,
		lat,
		property.RadiusMeters,
		property.ManualOverrideAllowed,
		property.Status,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByID возвращает объект по его UUID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1;`
	property, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property by id: %w", err)
	}
	return property, nil
}

// GetByCode возвращает активный объект по отсканированному коду
func (r *PropertyRepository) GetByCode(ctx context.Context, code string) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE code = $1 AND status = 'active';`
	property, err := scanProperty(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUnknownPropertyCode
		}
		return nil, fmt.Errorf("failed to get property by code: %w", err)
	}
	return property, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties SET
			name = $1,
			center = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			radius_meters = $4,
			manual_override_allowed = $5,
			status = $6,
			updated_at = NOW()
		WHERE id = $7;
	`
	lon, lat := geoPointArgs(property.Center)
	cmdTag, err := r.db.Exec(ctx, query,
		property.Name,
		lon,
		lat,
		property.RadiusMeters,
		property.ManualOverrideAllowed,
		property.Status,
		property.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrPropertyNotFound
	}
	return nil
}

// Deactivate устанавливает статус 'inactive' для объекта
func (r *PropertyRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE properties SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate property: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return service.ErrPropertyNotFound
	}
	return nil
}

// ListProperties возвращает список объектов с пагинацией
func (r *PropertyRepository) ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]*models.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return properties, nil
}

// GetPropertyFromCache пытается получить объект из Redis по коду
func (r *PropertyRepository) GetPropertyFromCache(ctx context.Context, code string) (*models.Property, error) {
	key := propertyCacheKey(code)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property from cache: %w", err)
	}

	property := &models.Property{}
	if err := json.Unmarshal(val, property); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property from cache: %w", err)
	}
	return property, nil
}

// SetPropertyCache сохраняет объект в Redis
func (r *PropertyRepository) SetPropertyCache(ctx context.Context, property *models.Property) error {
	key := propertyCacheKey(property.Code)
	val, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to marshal property for cache: %w", err)
	}
	// Срок жизни кеша 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set property in cache: %w", err)
	}
	return nil
}

// InvalidatePropertyCache удаляет объект из Redis кеша
func (r *PropertyRepository) InvalidatePropertyCache(ctx context.Context, code string) error {
	if err := r.redisClient.Del(ctx, propertyCacheKey(code)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate property cache: %w", err)
	}
	return nil
}

func propertyCacheKey(code string) string {
	return fmt.Sprintf("property_code:%s", code)
}

func scanProperty(row rowScanner) (*models.Property, error) {
	property := &models.Property{}
	var centerLat, centerLon *float64
	err := row.Scan(
		&property.ID,
		&property.Code,
		&property.Name,
		&centerLat,
		&centerLon,
		&property.RadiusMeters,
		&property.ManualOverrideAllowed,
		&property.Status,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	property.Center = geoPointFrom(centerLat, centerLon)
	return property, nil
}
