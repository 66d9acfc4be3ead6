package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/password"
	"catalog-service/prometheus"
)

// SellerRequest defines the structure for seller registration requests
type SellerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SellerHandler handles seller registration requests
type SellerHandler struct {
	sellers repository.SellerRepository
	hasher  password.Hasher
}

// NewSellerHandler creates a SellerHandler over the given repository and
// password hasher
func NewSellerHandler(sellers repository.SellerRepository, hasher password.Hasher) *SellerHandler {
	return &SellerHandler{sellers: sellers, hasher: hasher}
}

// CreateSeller handles registering a new seller
func (h *SellerHandler) CreateSeller(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Registering new seller")

	var req SellerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Seller validation failed", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
		})
	}

	// The plaintext password is never stored or logged.
	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create seller",
		})
	}

	seller := model.Seller{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	if err := h.sellers.Create(c.Request().Context(), &seller); err != nil {
		log.Error("Failed to create seller",
			zap.String("username", req.Username),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create seller",
		})
	}

	prometheus.RecordSellerOperation("create")
	log.Info("Seller created successfully",
		zap.Uint("seller_id", seller.ID),
		zap.String("username", seller.Username))
	return c.JSON(http.StatusCreated, seller)
}
