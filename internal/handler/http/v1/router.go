package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check (без аутентификации)
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Жизненный цикл визитов
	visits := secured.Group("/visits")
	{
		visits.POST("/check-in", h.checkIn)
		visits.PATCH("/:id/check-out", h.checkOut)
		visits.GET("/active", h.activeVisit)
		visits.GET("/stats", h.getStats)
		visits.GET("", h.listVisits)
		visits.GET("/:id", h.getVisit)
		visits.GET("/:id/audit", h.listVisitAudit)
	}

	// Маршруты для администрирования объектов и геозон (CRUD)
	properties := secured.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.GET("/:id", h.getProperty)
		properties.PUT("/:id", h.updateProperty)
		properties.DELETE("/:id", h.deleteProperty)
	}
}
