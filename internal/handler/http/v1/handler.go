package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fieldops/visit_tracking_system/internal/config"
	"github.com/fieldops/visit_tracking_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	visitService    service.VisitService
	propertyService service.PropertyService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(visitService service.VisitService, propertyService service.PropertyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		visitService:    visitService,
		propertyService: propertyService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Check in to a property
// @Description Open a visit for a worker at the property identified by the scanned code. Returns a structured rejection if the geofence verdict requires resolution. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CheckInRequest true "Check-in request"
// @Success 201 {object} VisitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} RejectionResponse "Geofence blocked, override not allowed"
// @Failure 404 {object} map[string]string "Unknown property code"
// @Failure 409 {object} RejectionResponse "Worker already has an open visit"
// @Failure 422 {object} RejectionResponse "Geofence rejection, resubmit with override reason or a fresh location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/check-in [post]
func (h *Handler) checkIn(c *gin.Context) {
	var input CheckInRequest
	log := h.logger.WithField("method", "checkIn")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit, err := h.visitService.CheckIn(c.Request.Context(), service.CheckInInput{
		WorkerID:       input.WorkerID,
		PropertyCode:   input.PropertyCode,
		Location:       DTOToGeoPoint(input.Location),
		OverrideReason: input.OverrideReason,
	})
	if err != nil {
		h.respondVisitError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToVisitResponse(visit))
}

// @Summary Check out of a visit
// @Description Close an open visit. The geofence is re-evaluated with the same verdict policy as check-in. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Visit ID"
// @Param request body CheckOutRequest true "Check-out request"
// @Success 200 {object} VisitResponse
// @Failure 400 {object} map[string]string "Invalid visit ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} RejectionResponse "Geofence blocked, override not allowed"
// @Failure 404 {object} map[string]string "Visit not found"
// @Failure 409 {object} map[string]string "Visit already closed"
// @Failure 422 {object} RejectionResponse "Geofence rejection, resubmit with override reason or a fresh location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/{id}/check-out [patch]
func (h *Handler) checkOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit ID"})
		return
	}
	log := h.logger.WithField("method", "checkOut").WithField("id", id)

	var input CheckOutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit, err := h.visitService.CheckOut(c.Request.Context(), service.CheckOutInput{
		VisitID:        id,
		Location:       DTOToGeoPoint(input.Location),
		OverrideReason: input.OverrideReason,
		VisitSummary:   input.VisitSummary,
		PhotoURLs:      input.PhotoURLs,
	})
	if err != nil {
		h.respondVisitError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVisitResponse(visit))
}

// @Summary Get the active visit of a worker
// @Description Return the worker's open visit, if any. Server state is the single source of truth. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param worker_id query string true "Worker ID"
// @Success 200 {object} VisitResponse
// @Failure 400 {object} map[string]string "Missing worker_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active visit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/active [get]
func (h *Handler) activeVisit(c *gin.Context) {
	workerID := c.Query("worker_id")
	if workerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker_id is required"})
		return
	}
	log := h.logger.WithField("method", "activeVisit").WithField("worker_id", workerID)

	visit, err := h.visitService.ActiveVisit(c.Request.Context(), workerID)
	if err != nil {
		log.WithError(err).Error("Failed to get active visit from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if visit == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active visit"})
		return
	}
	c.JSON(http.StatusOK, ModelToVisitResponse(visit))
}

// @Summary Get visit by ID
// @Description Get a single visit by its ID. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Visit ID"
// @Success 200 {object} VisitResponse
// @Failure 400 {object} map[string]string "Invalid visit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Visit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/{id} [get]
func (h *Handler) getVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit ID"})
		return
	}
	log := h.logger.WithField("method", "getVisit").WithField("id", id)

	visit, err := h.visitService.GetVisit(c.Request.Context(), id)
	if err != nil {
		h.respondVisitError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVisitResponse(visit))
}

// @Summary List visits of a worker
// @Description Get a paginated visit history of a worker, newest first. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param worker_id query string true "Worker ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} VisitResponse
// @Failure 400 {object} map[string]string "Missing worker_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits [get]
func (h *Handler) listVisits(c *gin.Context) {
	workerID := c.Query("worker_id")
	if workerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker_id is required"})
		return
	}
	log := h.logger.WithField("method", "listVisits").WithField("worker_id", workerID)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	visits, err := h.visitService.ListWorkerVisits(c.Request.Context(), workerID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list visits from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToVisitResponses(visits))
}

// @Summary List override audit entries of a visit
// @Description Get the append-only override audit trail of a visit. Requires API key.
// @Tags Visits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Visit ID"
// @Success 200 {array} AuditEntryResponse
// @Failure 400 {object} map[string]string "Invalid visit ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Visit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/{id}/audit [get]
func (h *Handler) listVisitAudit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit ID"})
		return
	}
	log := h.logger.WithField("method", "listVisitAudit").WithField("id", id)

	entries, err := h.visitService.ListOverrideAudit(c.Request.Context(), id)
	if err != nil {
		h.respondVisitError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAuditEntryResponses(entries))
}

// @Summary Get visit statistics
// @Description Get the count of distinct workers with check-ins inside the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visits/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	workerCount, err := h.visitService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{WorkerCount: workerCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondVisitError переводит типизированные ошибки сервиса в HTTP-ответы.
// Отказы геозоны информационные: клиент показывает вердикт и дает человеку решить.
func (h *Handler) respondVisitError(c *gin.Context, log *logrus.Entry, err error) {
	var rejection *service.RejectionError
	var alreadyCheckedIn *service.AlreadyCheckedInError
	var blocked *service.GeofenceBlockedError

	switch {
	case errors.As(err, &rejection):
		c.JSON(http.StatusUnprocessableEntity, RejectionResponse{
			RejectionKind: string(rejection.Kind),
			Verdict:       VerdictToResponse(rejection.Verdict),
			Error:         "geofence check requires resolution",
		})
	case errors.As(err, &alreadyCheckedIn):
		existingID := alreadyCheckedIn.ExistingVisitID
		c.JSON(http.StatusConflict, RejectionResponse{
			RejectionKind:   "already_checked_in",
			ExistingVisitID: &existingID,
			Error:           "worker already has an open visit",
		})
	case errors.As(err, &blocked):
		c.JSON(http.StatusForbidden, RejectionResponse{
			RejectionKind: "geofence_blocked",
			Verdict:       VerdictToResponse(blocked.Verdict),
			Error:         "manual override is not allowed for this property",
		})
	case errors.Is(err, service.ErrUnknownPropertyCode):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown property code"})
	case errors.Is(err, service.ErrVisitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "visit not found"})
	case errors.Is(err, service.ErrVisitAlreadyClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "visit already closed"})
	case errors.Is(err, service.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
