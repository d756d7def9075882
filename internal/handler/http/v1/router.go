package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Справочники
	api.GET("/contacts", h.listContacts)
	api.GET("/languages", h.listLanguages)

	// Лента оповещений общая для всех, ручное обновление ходит в модель
	api.GET("/news", h.getNews)
	api.POST("/news/refresh", h.limiter.Middleware(), h.refreshNews)

	// Маршрут для проверки кода не зависит от сессии
	api.POST("/support/track", h.trackApplication)

	// Админ-консоль
	admin := api.Group("/admin")
	{
		admin.POST("/incidents", h.createIncident)
		admin.GET("/incidents", h.listIncidents)
		admin.DELETE("/incidents/:id", h.deleteIncident)
		admin.PATCH("/incidents/:id/status", h.updateIncidentStatus)
		admin.GET("/stats", h.getStats)
		admin.PUT("/broadcast", h.setBroadcastDraft)
		admin.POST("/broadcast/send", h.sendBroadcast)
	}

	// Все остальное состояние принадлежит сессии браузера
	sess := api.Group("", sessionMiddleware(h.sessions))
	{
		sess.GET("/shell", h.getShell)
		sess.PUT("/shell/tab", h.selectTab)
		sess.PUT("/shell/language", h.selectLanguage)
		sess.POST("/shell/sos", h.triggerSOS)
		sess.DELETE("/shell/sos", h.cancelSOS)

		sess.GET("/zones", h.listZones)
		sess.GET("/zones/selection", h.getSelection)
		sess.PUT("/zones/selection/:id", h.selectZone)
		sess.DELETE("/zones/selection", h.clearSelection)
		sess.PUT("/map/center", h.setCenter)

		sess.GET("/facilities", h.getFacilities)
		sess.PUT("/facilities/category", h.limiter.Middleware(), h.selectFacilityCategory)
		sess.GET("/facilities/directory", h.facilityDirectory)
		sess.GET("/explorer", h.getExplorer)
		sess.GET("/reports", h.getReport)
		sess.GET("/reports/image", h.getReportImage)
		sess.POST("/reports/image", h.uploadImage)
		sess.DELETE("/reports/image", h.removeImage)

		sess.GET("/support", h.getSupport)
		sess.PUT("/support/mode", h.setSupportMode)
		sess.POST("/support/skills/:skill", h.toggleSkill)
		sess.POST("/support/submit", h.submitSupport)
		sess.POST("/support/reset", h.resetSupport)
		sess.GET("/support/activity", h.listActivity)

		// Запросы к модели ограничены по IP
		ai := sess.Group("", h.limiter.Middleware())
		{
			ai.POST("/places/search", h.searchPlaces)
			ai.POST("/facilities/search", h.searchFacilities)
			ai.POST("/explorer/lookup", h.lookupLocation)
			ai.POST("/reports/analyze", h.analyzeImage)
		}
	}
}
