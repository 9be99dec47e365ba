package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityreport-be/middlewares"
	"cityreport-be/repository"
	"cityreport-be/store"
	"cityreport-be/utils"
)

func authEngine(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", ac.RegisterUser)
	r.POST("/login", ac.LoginUser)
	r.GET("/me", middlewares.AuthMiddleware(ac.Secret, zerolog.Nop()), ac.GetMe)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginAndMe(t *testing.T) {
	ac := NewAuthController(repository.NewMemoryRepository(store.Seed()), "test-secret", zerolog.Nop())
	r := authEngine(ac)

	w := postJSON(r, "/register", `{"name":"Elif T.","email":"Elif@Example.com","password":"parola123","alias":"ParkFan"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		Token       string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, "elif@example.com", reg.Email)
	assert.Equal(t, "ParkFan", reg.DisplayName)
	userID, err := utils.ParseToken("test-secret", reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)

	w = postJSON(r, "/register", `{"name":"Elif","email":"elif@example.com","password":"parola123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/login", `{"email":"elif@example.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/login", `{"email":"ELIF@example.com","password":"parola123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"displayName":"ParkFan"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginRejects(t *testing.T) {
	ac := NewAuthController(repository.NewMemoryRepository(store.Seed()), "test-secret", zerolog.Nop())
	r := authEngine(ac)

	// the seeded profile has no password and cannot log in
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/login", `{"email":"taylan@example.com","password":"anything"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/login", `{"email":"ghost@example.com","password":"anything"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/login", `{"email":"not-an-email"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/register", `{"name":"x","email":"x@example.com","password":"123"}`).Code)
}

func TestGetMeForSeedUser(t *testing.T) {
	ac := NewAuthController(repository.NewMemoryRepository(store.Seed()), "test-secret", zerolog.Nop())
	r := authEngine(ac)

	tok, err := utils.GenerateToken("test-secret", "1", ac.Now())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		DisplayName string   `json:"displayName"`
		Points      int      `json:"points"`
		Streak      int      `json:"streak"`
		Badges      []string `json:"badges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "CityGuardian", me.DisplayName)
	assert.Equal(t, 1247, me.Points)
	assert.Equal(t, 7, me.Streak)
	assert.Len(t, me.Badges, 3)

	tok, _ = utils.GenerateToken("test-secret", "missing", ac.Now())
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
