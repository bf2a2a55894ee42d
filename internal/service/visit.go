package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldops/visit_tracking_system/internal/config"
	"github.com/fieldops/visit_tracking_system/internal/geofence"
	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VisitRepository определяет контракт хранилища визитов.
// TryOpenVisit и CloseVisit атомарны: запись аудита (если передана)
// выполняется в одной транзакции с изменением визита.
type VisitRepository interface {
	TryOpenVisit(ctx context.Context, visit *models.Visit, audit *models.OverrideAuditEntry) error
	CloseVisit(ctx context.Context, visit *models.Visit, audit *models.OverrideAuditEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Visit, error)
	FindOpenVisit(ctx context.Context, workerID string) (*models.Visit, error)
	ListByWorker(ctx context.Context, workerID string, page, pageSize int) ([]*models.Visit, error)
	GetVisitStats(ctx context.Context, minutes int) (int, error)
}

// AuditLogRepository определяет контракт чтения журнала override-записей
type AuditLogRepository interface {
	ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*models.OverrideAuditEntry, error)
}

// VisitService определяет контракт для бизнес-логики жизненного цикла визитов
type VisitService interface {
	CheckIn(ctx context.Context, input CheckInInput) (*models.Visit, error)
	CheckOut(ctx context.Context, input CheckOutInput) (*models.Visit, error)
	ActiveVisit(ctx context.Context, workerID string) (*models.Visit, error)
	GetVisit(ctx context.Context, id uuid.UUID) (*models.Visit, error)
	ListWorkerVisits(ctx context.Context, workerID string, page, pageSize int) ([]*models.Visit, error)
	ListOverrideAudit(ctx context.Context, visitID uuid.UUID) ([]*models.OverrideAuditEntry, error)
	GetStats(ctx context.Context) (int, error)
}

// CheckInInput - параметры запроса check-in
type CheckInInput struct {
	WorkerID       string
	PropertyCode   string
	Location       *models.GeoPoint
	OverrideReason string
}

// CheckOutInput - параметры запроса check-out
type CheckOutInput struct {
	VisitID        uuid.UUID
	Location       *models.GeoPoint
	OverrideReason string
	VisitSummary   string
	PhotoURLs      []string
}

type visitService struct {
	visits           VisitRepository
	properties       PropertyRepository
	audit            AuditLogRepository
	logger           *logrus.Logger
	cfg              *config.Config
	webhookPublisher webhook.WebhookPublisher
}

func NewVisitService(
	visits VisitRepository,
	properties PropertyRepository,
	audit AuditLogRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	webhookPublisher webhook.WebhookPublisher,
) VisitService {
	return &visitService{
		visits:           visits,
		properties:       properties,
		audit:            audit,
		logger:           logger,
		cfg:              cfg,
		webhookPublisher: webhookPublisher,
	}
}

// CheckIn открывает визит для работника на объекте, код которого был отсканирован.
// Проверка "нет ли уже открытого визита" и создание выполняются одной атомарной
// операцией хранилища, поэтому два конкурентных check-in не могут открыть два визита.
func (s *visitService) CheckIn(ctx context.Context, input CheckInInput) (*models.Visit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "visit",
		"method":        "CheckIn",
		"worker_id":     input.WorkerID,
		"property_code": input.PropertyCode,
	})
	log.Info("Attempting worker check-in")

	property, err := s.resolvePropertyByCode(ctx, input.PropertyCode)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve property by code")
		return nil, err
	}

	verdict := s.evaluateLocation(input.Location, property)
	auditNeeded, err := overrideDecision(verdict, input.OverrideReason)
	if err != nil {
		log.WithFields(logrus.Fields{
			"verdict":  verdict.Status,
			"distance": verdict.DistanceMeters,
		}).Info("Check-in not committed, geofence verdict requires resolution")
		return nil, err
	}

	visit := &models.Visit{
		WorkerID:        input.WorkerID,
		PropertyID:      property.ID,
		Status:          models.VisitStatusOpen,
		CheckInLocation: input.Location,
		CheckInVerdict:  verdict,
	}
	if auditNeeded {
		visit.OverrideReason = input.OverrideReason
	}

	auditEntry := s.buildAuditEntry(auditNeeded, models.AuditStageCheckIn, verdict, input.OverrideReason)
	if err := s.visits.TryOpenVisit(ctx, visit, auditEntry); err != nil {
		if errors.Is(err, ErrOpenVisitExists) {
			existingID := uuid.Nil
			if existing, findErr := s.visits.FindOpenVisit(ctx, input.WorkerID); findErr == nil && existing != nil {
				existingID = existing.ID
			}
			log.WithField("existing_visit_id", existingID).Warn("Worker already has an open visit")
			return nil, &AlreadyCheckedInError{ExistingVisitID: existingID}
		}
		log.WithError(err).Error("Failed to open visit in repository")
		return nil, fmt.Errorf("service: could not open visit: %w", err)
	}

	s.publishVisitEvent(ctx, log, webhook.EventCheckIn, visit, verdict, auditNeeded)
	log.WithField("visit_id", visit.ID).Info("Worker checked in successfully")
	return visit, nil
}

// CheckOut закрывает открытый визит. Геозона проверяется заново по тому же объекту:
// позиция могла измениться с момента check-in, политика вердиктов та же.
func (s *visitService) CheckOut(ctx context.Context, input CheckOutInput) (*models.Visit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "visit",
		"method":   "CheckOut",
		"visit_id": input.VisitID,
	})
	log.Info("Attempting worker check-out")

	visit, err := s.visits.GetByID(ctx, input.VisitID)
	if err != nil {
		log.WithError(err).Warn("Failed to get visit for check-out")
		return nil, err
	}
	if visit.Status == models.VisitStatusClosed {
		log.Warn("Attempted to check out an already closed visit")
		return nil, ErrVisitAlreadyClosed
	}

	property, err := s.properties.GetByID(ctx, visit.PropertyID)
	if err != nil {
		log.WithError(err).Error("Failed to get property for check-out evaluation")
		return nil, fmt.Errorf("service: could not load visit property: %w", err)
	}

	verdict := s.evaluateLocation(input.Location, property)
	auditNeeded, err := overrideDecision(verdict, input.OverrideReason)
	if err != nil {
		log.WithFields(logrus.Fields{
			"verdict":  verdict.Status,
			"distance": verdict.DistanceMeters,
		}).Info("Check-out not committed, geofence verdict requires resolution")
		return nil, err
	}

	visit.CheckOutLocation = input.Location
	visit.CheckOutVerdict = verdict
	visit.VisitSummary = input.VisitSummary
	visit.PhotoURLs = input.PhotoURLs

	auditEntry := s.buildAuditEntry(auditNeeded, models.AuditStageCheckOut, verdict, input.OverrideReason)
	if err := s.visits.CloseVisit(ctx, visit, auditEntry); err != nil {
		if errors.Is(err, ErrVisitAlreadyClosed) || errors.Is(err, ErrVisitNotFound) {
			log.WithError(err).Warn("Visit could not be closed")
			return nil, err
		}
		log.WithError(err).Error("Failed to close visit in repository")
		return nil, fmt.Errorf("service: could not close visit: %w", err)
	}

	s.publishVisitEvent(ctx, log, webhook.EventCheckOut, visit, verdict, auditNeeded)
	log.Info("Worker checked out successfully")
	return visit, nil
}

// ActiveVisit возвращает открытый визит работника или nil, если такого нет.
// Серверное состояние - единственный источник истины, клиентский кеш не учитывается.
func (s *visitService) ActiveVisit(ctx context.Context, workerID string) (*models.Visit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "visit",
		"method":    "ActiveVisit",
		"worker_id": workerID,
	})

	visit, err := s.visits.FindOpenVisit(ctx, workerID)
	if err != nil {
		log.WithError(err).Error("Failed to find open visit in repository")
		return nil, fmt.Errorf("service: could not find open visit: %w", err)
	}
	return visit, nil
}

// GetVisit возвращает визит по ID
func (s *visitService) GetVisit(ctx context.Context, id uuid.UUID) (*models.Visit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "visit",
		"method":   "GetVisit",
		"visit_id": id,
	})

	visit, err := s.visits.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get visit from repository")
		return nil, err
	}
	return visit, nil
}

// ListWorkerVisits возвращает историю визитов работника с пагинацией
func (s *visitService) ListWorkerVisits(ctx context.Context, workerID string, page, pageSize int) ([]*models.Visit, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "visit",
		"method":    "ListWorkerVisits",
		"worker_id": workerID,
		"page":      page,
		"page_size": pageSize,
	})

	visits, err := s.visits.ListByWorker(ctx, workerID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list visits from repository")
		return nil, fmt.Errorf("service: could not list visits: %w", err)
	}

	log.WithField("count", len(visits)).Info("Visits listed successfully")
	return visits, nil
}

// ListOverrideAudit возвращает override-записи визита для сверки операторами
func (s *visitService) ListOverrideAudit(ctx context.Context, visitID uuid.UUID) ([]*models.OverrideAuditEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "visit",
		"method":   "ListOverrideAudit",
		"visit_id": visitID,
	})

	if _, err := s.visits.GetByID(ctx, visitID); err != nil {
		log.WithError(err).Warn("Attempted to list audit for a non-existent visit")
		return nil, err
	}

	entries, err := s.audit.ListByVisit(ctx, visitID)
	if err != nil {
		log.WithError(err).Error("Failed to list audit entries from repository")
		return nil, fmt.Errorf("service: could not list audit entries: %w", err)
	}
	return entries, nil
}

// GetStats возвращает количество уникальных работников, отметившихся за окно времени
func (s *visitService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "visit",
		"method":  "GetStats",
	})

	count, err := s.visits.GetVisitStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get visit stats from repository")
		return 0, fmt.Errorf("service: could not get visit stats: %w", err)
	}
	return count, nil
}

// resolvePropertyByCode ищет объект по коду: сначала в кеше, затем в бд
func (s *visitService) resolvePropertyByCode(ctx context.Context, code string) (*models.Property, error) {
	log := s.logger.WithField("property_code", code)

	cached, err := s.properties.GetPropertyFromCache(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to read property from cache")
	}
	if cached != nil {
		return cached, nil
	}

	property, err := s.properties.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.properties.SetPropertyCache(ctx, property); err != nil {
		log.WithError(err).Warn("Failed to cache property")
	}
	return property, nil
}

func (s *visitService) evaluateLocation(location *models.GeoPoint, property *models.Property) *models.GeofenceVerdict {
	if location == nil {
		return geofence.MissingLocation(property)
	}
	return geofence.Evaluate(*location, property)
}

func (s *visitService) buildAuditEntry(needed bool, stage models.AuditStage, verdict *models.GeofenceVerdict, reason string) *models.OverrideAuditEntry {
	if !needed {
		return nil
	}
	return &models.OverrideAuditEntry{
		Stage:   stage,
		Verdict: verdict,
		Reason:  reason,
	}
}

func (s *visitService) publishVisitEvent(ctx context.Context, log *logrus.Entry, eventType string, visit *models.Visit, verdict *models.GeofenceVerdict, overrideUsed bool) {
	event := webhook.VisitEvent{
		Type:          eventType,
		VisitID:       visit.ID,
		WorkerID:      visit.WorkerID,
		PropertyID:    visit.PropertyID,
		VerdictStatus: verdict.Status,
		OverrideUsed:  overrideUsed,
		Timestamp:     time.Now().UTC(),
	}
	// Сбой публикации не откатывает уже зафиксированный визит
	if err := s.webhookPublisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish visit event webhook")
	}
}

// overrideDecision применяет протокол override к вердикту.
// Возвращает true, если требуется запись в журнал аудита.
func overrideDecision(verdict *models.GeofenceVerdict, reason string) (bool, error) {
	switch verdict.Status {
	case models.VerdictOK:
		return false, nil
	case models.VerdictSoftWarning:
		if reason == "" {
			return false, &RejectionError{Kind: models.VerdictSoftWarning, Verdict: verdict}
		}
		return true, nil
	default:
		if !verdict.OverrideAllowed {
			return false, &GeofenceBlockedError{Verdict: verdict}
		}
		if reason == "" {
			return false, &RejectionError{Kind: models.VerdictHardBlock, Verdict: verdict}
		}
		return true, nil
	}
}
