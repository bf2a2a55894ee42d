package service

import (
	"errors"
	"fmt"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrUnknownPropertyCode - отсканированный код не соответствует ни одному объекту
	ErrUnknownPropertyCode = errors.New("unknown property code")
	// ErrPropertyNotFound - объект с таким ID не найден
	ErrPropertyNotFound = errors.New("property not found")
	// ErrVisitNotFound - визит с таким ID не найден
	ErrVisitNotFound = errors.New("visit not found")
	// ErrVisitAlreadyClosed - повторный check-out уже закрытого визита.
	// Возвращается отдельной ошибкой, а не "тихим" успехом, чтобы клиент
	// мог отличить дубликат отправки от незавершенного визита.
	ErrVisitAlreadyClosed = errors.New("visit already closed")
	// ErrOpenVisitExists - у работника уже есть открытый визит (уровень хранилища)
	ErrOpenVisitExists = errors.New("open visit already exists for worker")
)

// AlreadyCheckedInError - конфликт: у работника уже есть открытый визит
type AlreadyCheckedInError struct {
	ExistingVisitID uuid.UUID
}

func (e *AlreadyCheckedInError) Error() string {
	return fmt.Sprintf("worker already checked in, open visit %s", e.ExistingVisitID)
}

// GeofenceBlockedError - жесткая блокировка без права на override.
// Для таких объектов пути обхода не существует, поможет только новая,
// более близкая координата.
type GeofenceBlockedError struct {
	Verdict *models.GeofenceVerdict
}

func (e *GeofenceBlockedError) Error() string {
	return fmt.Sprintf("geofence blocked, override not allowed: %s", e.Verdict.Message)
}

// RejectionError - информационный отказ, разрешаемый повторной отправкой
// с указанной причиной override либо со свежей координатой. Визит при этом не создается.
type RejectionError struct {
	Kind    models.VerdictStatus
	Verdict *models.GeofenceVerdict
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("geofence rejection %s: %s", e.Kind, e.Verdict.Message)
}
