package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nikhil10982006/MRI-Soundscape/internal/service"
)

func PostAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RecordEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid analytics data")
			return
		}

		if err := service.ValidateRecordEventRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid analytics data")
			return
		}

		event, err := service.RecordEvent(c.Request.Context(), app.AnalyticsRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to record analytics")
			return
		}

		HandleSuccess(c, app.Logger(), event, nil)
	}
}

func GetAnalyticsSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := app.AnalyticsRepo().GetSummary(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve analytics summary")
			return
		}

		HandleSuccess(c, app.Logger(), summary, nil)
	}
}
