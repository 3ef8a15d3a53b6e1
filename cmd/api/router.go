package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	emailDelivery "maildigest-backend/internal/email/delivery"
)

func SetupRoutes(r *gin.Engine, summaryHandler *emailDelivery.SummaryHandler, settings SettingsView) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/settings", GetSettings(settings))

		api.POST("/summarize", summaryHandler.Summarize)
	}
}
