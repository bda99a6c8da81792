package middleware

import (
	"net/http"
	"strings"

	"gym-service/pkg/jwtutil"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token issued by the external identity
// provider and stores the caller's identity in the request context. Handlers
// behind it never see an unverified request.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)
		prometheus.AuthAttemptsCounter.Inc()

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token de autenticación es requerido!"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token de autenticación es requerido!"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid bearer token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token inválido o expirado!"})
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UID)
		c.Set("email", claims.Email)
		prometheus.AuthSuccessCounter.Inc()

		// Token is valid, proceed with the request
		return next(c)
	}
}

// GetUserIDFromContext retrieves the authenticated user's UID from the context
func GetUserIDFromContext(c echo.Context) (string, bool) {
	uid, ok := c.Get("user_id").(string)
	return uid, ok
}
