package controllers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/ovenline/pizza-order-api/internal/services"
)

// Matches the client-side signup check: something@something.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthController struct {
	userService services.UserService
	jwtSecret   []byte
}

func NewAuthController(userService services.UserService, jwtSecret string) *AuthController {
	return &AuthController{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account from name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body object true "Signup payload {name, email, password}"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed,
			"Name, email, and password are required"))
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed,
			"Please provide a valid email address"))
		return
	}

	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed,
			"Password must be at least 6 characters long"))
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := user.HashPassword(); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"An error occurred during registration. Please try again."))
		return
	}

	if err := ac.userService.CreateUser(user); err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict,
				"An account with this email already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"An error occurred during registration. Please try again."))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    user.Public(),
	})
}

// Login godoc
// @Summary Authenticate an existing user
// @Description Verify email and password, returning the user identity and a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body object true "Login payload {email, password}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed,
			"Email and password are required"))
		return
	}

	// One response for unknown email and wrong password
	user, err := ac.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized,
			"Invalid email or password"))
		return
	}

	// Issue a signed session token; protected routes verify it server-side
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": user.ID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"iat": time.Now().Unix(),
	})

	tokenString, err := token.SignedString(ac.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer,
			"An error occurred during login. Please try again."))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login successful",
		"data":         user.Public(),
		"access_token": tokenString,
		"token_type":   "Bearer",
		"expires_in":   86400,
	})
}
