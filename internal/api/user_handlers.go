package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nikhil10982006/MRI-Soundscape/internal/service"
	"github.com/nikhil10982006/MRI-Soundscape/internal/storage"
)

func PostUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid user data")
			return
		}

		if err := service.ValidateCreateUserRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid user data")
			return
		}

		user, err := service.CreateUser(c.Request.Context(), app.UserRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to create user")
			return
		}

		HandleSuccess(c, app.Logger(), user, nil)
	}
}

func GetUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := app.UserRepo().GetUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "User not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to retrieve user")
			return
		}

		HandleSuccess(c, app.Logger(), user, nil)
	}
}
