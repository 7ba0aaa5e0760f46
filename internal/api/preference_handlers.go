package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nikhil10982006/MRI-Soundscape/internal/service"
)

func GetPreferences(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs, err := app.PreferencesRepo().GetPreferences(c.Request.Context(), c.Param("userId"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve preferences")
			return
		}

		HandleSuccess(c, app.Logger(), prefs, nil)
	}
}

func PostPreferences(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.PreferencesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid preferences data")
			return
		}

		if err := service.ValidatePreferencesRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid preferences data")
			return
		}

		// The path parameter owns the user identity regardless of the body.
		prefs, err := service.SavePreferences(c.Request.Context(), app.PreferencesRepo(), c.Param("userId"), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to update preferences")
			return
		}

		HandleSuccess(c, app.Logger(), prefs, nil)
	}
}
