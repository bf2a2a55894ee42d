package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditStage - этап визита, на котором был применен override
type AuditStage string

const (
	AuditStageCheckIn  AuditStage = "check_in"
	AuditStageCheckOut AuditStage = "check_out"
)

// OverrideAuditEntry - неизменяемая запись о том, что работник продолжил
// операцию несмотря на предупреждение или блокировку геозоны.
// Записи только добавляются, никогда не обновляются и не удаляются.
type OverrideAuditEntry struct {
	ID         int64            `json:"id"`
	VisitID    uuid.UUID        `json:"visit_id"`
	Stage      AuditStage       `json:"stage"`
	Verdict    *GeofenceVerdict `json:"verdict"`
	Reason     string           `json:"reason"`
	RecordedAt time.Time        `json:"recorded_at"`
}
