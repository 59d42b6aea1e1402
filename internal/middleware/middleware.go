package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ovenline/pizza-order-api/internal/models"
)

var jwtSecret []byte

// SetJWTSecret configures the secret used to verify session tokens.
// Called once at startup before any route is served.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// JWTAuth validates the Bearer session token issued at login and puts the
// authenticated user id into the request context. A client-side presence
// check is not a security boundary; every protected call is verified here.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, "Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondUnauthorized(c, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondUnauthorized(c, "Bearer token is empty")
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			respondUnauthorized(c, err.Error())
			return
		}

		userID, err := extractUserID(claims)
		if err != nil {
			respondUnauthorized(c, err.Error())
			return
		}
		c.Set("userID", userID)

		c.Next()
	}
}

// respondUnauthorized aborts the request with a 401 and a uniform error shape
func respondUnauthorized(c *gin.Context, description string) {
	c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, description))
	c.Abort()
}

// parseJWTToken validates and parses a JWT token using HMAC signing method
// Returns the claims if valid, error otherwise
func parseJWTToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// parseAndValidateJWT parses the JWT and performs strict validation
func parseAndValidateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractUserID extracts and validates the user ID from the "uid" claim.
// JSON numbers arrive as float64; numeric strings are also accepted.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	if uid, ok := claims["uid"].(float64); ok {
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	}

	if uid, ok := claims["uid"].(string); ok && uid != "" {
		var parsed uint
		if _, err := fmt.Sscanf(uid, "%d", &parsed); err != nil || parsed == 0 {
			return 0, fmt.Errorf("invalid uid claim format: must be a numeric string, got: %s", uid)
		}
		return parsed, nil
	}

	return 0, fmt.Errorf("token missing required 'uid' claim. This token is not valid for this API")
}
