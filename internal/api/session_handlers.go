package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nikhil10982006/MRI-Soundscape/internal/service"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

func PostSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid session data")
			return
		}

		if err := service.ValidateCreateSessionRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid session data")
			return
		}

		session, err := service.CreateSession(c.Request.Context(), app.SessionRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to create session")
			return
		}

		HandleSuccess(c, app.Logger(), session, nil)
	}
}

func GetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := app.SessionRepo().GetSession(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Session not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve session")
			return
		}

		HandleSuccess(c, app.Logger(), session, nil)
	}
}

func GetUserSessions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := app.SessionRepo().GetUserSessions(c.Request.Context(), c.Param("userId"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve user sessions")
			return
		}

		HandleSuccess(c, app.Logger(), sessions, nil)
	}
}

// GetSessionAnalytics lists the events recorded against one session.
func GetSessionAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := app.AnalyticsRepo().GetEventsBySession(c.Request.Context(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve session analytics")
			return
		}

		HandleSuccess(c, app.Logger(), events, nil)
	}
}
