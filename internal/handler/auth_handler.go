package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/repository"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/password"
	"catalog-service/prometheus"
)

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles login requests
type AuthHandler struct {
	sellers repository.SellerRepository
	hasher  password.Hasher
}

// NewAuthHandler creates an AuthHandler over the given repository and
// password hasher
func NewAuthHandler(sellers repository.SellerRepository, hasher password.Hasher) *AuthHandler {
	return &AuthHandler{sellers: sellers, hasher: hasher}
}

// Login handles seller authentication
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Processing login request")

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Login validation failed", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
		})
	}

	seller, err := h.sellers.FindByUsername(c.Request().Context(), req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		prometheus.RecordAuthError("user_not_found")
		log.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "User not found",
		})
	}
	if err != nil {
		log.Error("Failed to look up seller",
			zap.String("username", req.Username),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Login failed",
		})
	}

	if !h.hasher.Verify(req.Password, seller.Password) {
		prometheus.RecordAuthError("invalid_credentials")
		log.Warn("Invalid credentials", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Invalid credentials",
		})
	}

	prometheus.LoginCounter.Inc()
	log.Info("Login successful",
		zap.Uint("seller_id", seller.ID),
		zap.String("username", seller.Username))

	// The credential payload is a fixed placeholder until session management
	// lands.
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": "access_token",
		"token_type":   "bearer",
	})
}
