package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityreport-be/middlewares"
	"cityreport-be/models"
	"cityreport-be/repository"
)

type profile struct {
	models.User
	DisplayName string `json:"displayName"`
}

// GetMe returns the authenticated user's profile
func (ac *AuthController) GetMe(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := ac.Repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ac.Log.Error().Err(err).Str("user", userID).Msg("get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, profile{User: user, DisplayName: user.DisplayName()})
}
