package handler

import (
	"net/http"

	"gym-service/internal/model"
	"gym-service/pkg/jwtutil"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Login verifies an ID token issued by the external identity provider and
// echoes the caller's identity. Tokens are only ever verified here, never
// minted: the provider owns the credential flow.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Contenido de la solicitud no es JSON válido o está vacío"})
	}

	if req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "idToken es requerido"})
	}

	claims, err := jwtutil.ValidateToken(req.IDToken)
	if err != nil {
		log.Warn("Token verification failed", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Error de autenticación: token inválido o expirado"})
	}

	log.Info("Token verified", zap.String("uid", claims.UID))
	prometheus.AuthSuccessCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Autenticación exitosa",
		"uid":     claims.UID,
		"email":   claims.Email,
	})
}
