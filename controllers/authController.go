package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cityreport-be/models"
	"cityreport-be/repository"
	"cityreport-be/utils"
)

type AuthController struct {
	Repo   repository.Repository
	Secret string
	Log    zerolog.Logger
	Now    func() time.Time
}

func NewAuthController(repo repository.Repository, secret string, log zerolog.Logger) *AuthController {
	return &AuthController{Repo: repo, Secret: secret, Log: log, Now: time.Now}
}

func (ac *AuthController) RegisterUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Alias    string `json:"alias" binding:"max=30"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := ac.Now().UTC()
	user := models.User{
		Name:      input.Name,
		Email:     strings.ToLower(input.Email),
		Password:  input.Password,
		Alias:     input.Alias,
		UseAlias:  input.Alias != "",
		Badges:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.HashPassword(); err != nil {
		ac.Log.Error().Err(err).Msg("hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if err := ac.Repo.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		ac.Log.Error().Err(err).Msg("insert user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	ac.respondWithToken(c, http.StatusCreated, user)
}

func (ac *AuthController) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Repo.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			ac.Log.Error().Err(err).Msg("find user")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == "" || !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ac.respondWithToken(c, http.StatusOK, user)
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, user models.User) {
	token, err := utils.GenerateToken(ac.Secret, user.ID, ac.Now())
	if err != nil {
		ac.Log.Error().Err(err).Msg("generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(status, gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"displayName": user.DisplayName(),
		"createdAt":   user.CreatedAt,
		"token":       token,
	})
}
