package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/ovenline/pizza-order-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Order{}, &models.Pizza{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database visible to every query
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	authController := NewAuthController(services.NewUserService(db), testJWTSecret)

	router := gin.New()
	router.POST("/api/v1/auth/signup", authController.Signup)
	router.POST("/api/v1/auth/login", authController.Login)
	return router, db
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	router, db := setupAuthRouter(t)

	w := postJSON(t, router, "/api/v1/auth/signup", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Ada", data["name"])
	assert.Equal(t, "ada@example.com", data["email"])
	assert.NotZero(t, data["id"])
	assert.NotContains(t, data, "password", "the hash never leaves the server")

	// The stored credential is a hash, not the plaintext
	var stored models.User
	require.NoError(t, db.Where("email = ?", "ada@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestSignupValidation(t *testing.T) {
	testCases := []struct {
		name        string
		payload     gin.H
		wantMessage string
	}{
		{
			name:        "missing fields",
			payload:     gin.H{"email": "ada@example.com"},
			wantMessage: "Name, email, and password are required",
		},
		{
			name:        "invalid email",
			payload:     gin.H{"name": "Ada", "email": "not-an-email", "password": "secret123"},
			wantMessage: "Please provide a valid email address",
		},
		{
			name:        "short password",
			payload:     gin.H{"name": "Ada", "email": "ada@example.com", "password": "short"},
			wantMessage: "Password must be at least 6 characters long",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupAuthRouter(t)
			w := postJSON(t, router, "/api/v1/auth/signup", tt.payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var apiErr models.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := setupAuthRouter(t)

	payload := gin.H{"name": "Ada", "email": "dup@example.com", "password": "secret123"}
	w := postJSON(t, router, "/api/v1/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/signup", payload)
	assert.Equal(t, http.StatusConflict, w.Code, "duplicate email is a conflict, not bad-request or internal")

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrConflict, apiErr.Code)
}

func TestLogin(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := postJSON(t, router, "/api/v1/auth/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Bearer", response["token_type"])

	// A session token is issued at login and verified server-side afterwards
	accessToken, ok := response["access_token"].(string)
	require.True(t, ok)
	assert.Contains(t, accessToken, ".")

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", data["email"])
}

func TestLoginUniformFailure(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := postJSON(t, router, "/api/v1/auth/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	unknownEmail := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})
	wrongPassword := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String(),
		"unknown email and wrong password must be indistinguishable")
}
