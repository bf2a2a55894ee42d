package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VisitRepository struct {
	db *pgxpool.Pool
}

func NewVisitRepository(db *pgxpool.Pool) service.VisitRepository {
	return &VisitRepository{db: db}
}

const visitColumns = `
	id,
	worker_id,
	property_id,
	status,
	check_in_at,
	ST_Y(check_in_location::geometry) as check_in_lat,
	ST_X(check_in_location::geometry) as check_in_lon,
	check_in_verdict,
	check_out_at,
	ST_Y(check_out_location::geometry) as check_out_lat,
	ST_X(check_out_location::geometry) as check_out_lon,
	check_out_verdict,
	COALESCE(override_reason, '') as override_reason,
	COALESCE(visit_summary, '') as visit_summary,
	photo_urls
`

// TryOpenVisit атомарно создает открытый визит. Частичный уникальный индекс
// visits_worker_open_uniq гарантирует не более одного открытого визита на работника:
// при нарушении возвращается service.ErrOpenVisitExists.
// Запись аудита (если передана) выполняется в той же транзакции.
func (r *VisitRepository) TryOpenVisit(ctx context.Context, visit *models.Visit, audit *models.OverrideAuditEntry) error {
	verdictJSON, err := json.Marshal(visit.CheckInVerdict)
	if err != nil {
		return fmt.Errorf("failed to marshal check-in verdict: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin open-visit transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO visits (worker_id, property_id, status, check_in_location, check_in_verdict, override_reason)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, NULLIF($7, ''))
		RETURNING id, check_in_at;
	`
	lon, lat := geoPointArgs(visit.CheckInLocation)
	err = tx.QueryRow(ctx, query,
		visit.WorkerID,
		visit.PropertyID,
		visit.Status,
		lon,
		lat,
		verdictJSON,
		visit.OverrideReason,
	).Scan(&visit.ID, &visit.CheckInAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrOpenVisitExists
		}
		return fmt.Errorf("failed to open visit: %w", err)
	}

	if audit != nil {
		audit.VisitID = visit.ID
		if err := insertAuditEntry(ctx, tx, audit); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit open-visit transaction: %w", err)
	}
	return nil
}

// CloseVisit переводит открытый визит в closed. Условие status = 'open' в UPDATE
// делает закрытие атомарным: проигравший гонку повторный check-out получает
// service.ErrVisitAlreadyClosed, а не тихий успех.
func (r *VisitRepository) CloseVisit(ctx context.Context, visit *models.Visit, audit *models.OverrideAuditEntry) error {
	verdictJSON, err := json.Marshal(visit.CheckOutVerdict)
	if err != nil {
		return fmt.Errorf("failed to marshal check-out verdict: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin close-visit transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE visits SET
			status = 'closed',
			check_out_at = NOW(),
			check_out_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			check_out_verdict = $3,
			visit_summary = NULLIF($4, ''),
			photo_urls = $5
		WHERE id = $6 AND status = 'open'
		RETURNING check_out_at;
	`
	lon, lat := geoPointArgs(visit.CheckOutLocation)
	err = tx.QueryRow(ctx, query,
		lon,
		lat,
		verdictJSON,
		visit.VisitSummary,
		visit.PhotoURLs,
		visit.ID,
	).Scan(&visit.CheckOutAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyCloseMiss(ctx, visit.ID)
		}
		return fmt.Errorf("failed to close visit: %w", err)
	}
	visit.Status = models.VisitStatusClosed

	if audit != nil {
		audit.VisitID = visit.ID
		if err := insertAuditEntry(ctx, tx, audit); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit close-visit transaction: %w", err)
	}
	return nil
}

// classifyCloseMiss различает "визита нет" и "визит уже закрыт"
func (r *VisitRepository) classifyCloseMiss(ctx context.Context, id uuid.UUID) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM visits WHERE id = $1;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrVisitNotFound
		}
		return fmt.Errorf("failed to classify close miss: %w", err)
	}
	if status == models.VisitStatusClosed {
		return service.ErrVisitAlreadyClosed
	}
	return service.ErrVisitNotFound
}

// GetByID возвращает визит по его UUID
func (r *VisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1;`
	visit, err := scanVisit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to get visit by id: %w", err)
	}
	return visit, nil
}

// FindOpenVisit возвращает открытый визит работника или nil, если его нет
func (r *VisitRepository) FindOpenVisit(ctx context.Context, workerID string) (*models.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE worker_id = $1 AND status = 'open';`
	visit, err := scanVisit(r.db.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open visit: %w", err)
	}
	return visit, nil
}

// ListByWorker возвращает визиты работника, новые первыми, с пагинацией
func (r *VisitRepository) ListByWorker(ctx context.Context, workerID string, page, pageSize int) ([]*models.Visit, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + visitColumns + ` FROM visits WHERE worker_id = $1 ORDER BY check_in_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, workerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	visits := make([]*models.Visit, 0)
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		visits = append(visits, visit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return visits, nil
}

// GetVisitStats возвращает количество уникальных работников, отметившихся за окно времени
func (r *VisitRepository) GetVisitStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT worker_id)
		FROM visits
		WHERE check_in_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get visit stats: %w", err)
	}
	return count, nil
}

func insertAuditEntry(ctx context.Context, tx pgx.Tx, entry *models.OverrideAuditEntry) error {
	verdictJSON, err := json.Marshal(entry.Verdict)
	if err != nil {
		return fmt.Errorf("failed to marshal audit verdict: %w", err)
	}
	query := `
		INSERT INTO override_audit_entries (visit_id, stage, verdict, reason)
		VALUES ($1, $2, $3, $4) RETURNING id, recorded_at;
	`
	err = tx.QueryRow(ctx, query, entry.VisitID, entry.Stage, verdictJSON, entry.Reason).
		Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append override audit entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (*models.Visit, error) {
	visit := &models.Visit{}
	var (
		ciLat, ciLon, coLat, coLon *float64
		ciVerdict, coVerdict       []byte
	)
	err := row.Scan(
		&visit.ID,
		&visit.WorkerID,
		&visit.PropertyID,
		&visit.Status,
		&visit.CheckInAt,
		&ciLat,
		&ciLon,
		&ciVerdict,
		&visit.CheckOutAt,
		&coLat,
		&coLon,
		&coVerdict,
		&visit.OverrideReason,
		&visit.VisitSummary,
		&visit.PhotoURLs,
	)
	if err != nil {
		return nil, err
	}

	visit.CheckInLocation = geoPointFrom(ciLat, ciLon)
	visit.CheckOutLocation = geoPointFrom(coLat, coLon)
	if visit.CheckInVerdict, err = unmarshalVerdict(ciVerdict); err != nil {
		return nil, err
	}
	if visit.CheckOutVerdict, err = unmarshalVerdict(coVerdict); err != nil {
		return nil, err
	}
	return visit, nil
}

// geoPointArgs раскладывает точку в пару аргументов (lon, lat) для ST_MakePoint.
// nil точка дает NULL координаты, тогда и geography-колонка будет NULL.
func geoPointArgs(p *models.GeoPoint) (lon, lat *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.Longitude, &p.Latitude
}

func geoPointFrom(lat, lon *float64) *models.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.GeoPoint{Latitude: *lat, Longitude: *lon}
}

func unmarshalVerdict(data []byte) (*models.GeofenceVerdict, error) {
	if len(data) == 0 {
		return nil, nil
	}
	verdict := &models.GeofenceVerdict{}
	if err := json.Unmarshal(data, verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verdict: %w", err)
	}
	return verdict, nil
}
