package repository

import (
	"context"
	"fmt"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditLogRepository читает журнал override-записей.
// Сами записи добавляются в транзакциях открытия/закрытия визита (см. visit.go),
// таблица используется только в режиме append-only.
type AuditLogRepository struct {
	db *pgxpool.Pool
}

func NewAuditLogRepository(db *pgxpool.Pool) service.AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// ListByVisit возвращает override-записи визита в порядке их добавления
func (r *AuditLogRepository) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*models.OverrideAuditEntry, error) {
	query := `
		SELECT id, visit_id, stage, verdict, reason, recorded_at
		FROM override_audit_entries
		WHERE visit_id = $1
		ORDER BY recorded_at, id;
	`
	rows, err := r.db.Query(ctx, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list override audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.OverrideAuditEntry, 0)
	for rows.Next() {
		entry := &models.OverrideAuditEntry{}
		var verdictJSON []byte
		err := rows.Scan(
			&entry.ID,
			&entry.VisitID,
			&entry.Stage,
			&verdictJSON,
			&entry.Reason,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan override audit entry row: %w", err)
		}
		if entry.Verdict, err = unmarshalVerdict(verdictJSON); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}
