package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"
)

// defaultSellerID is assigned to every product created through the public
// endpoint.
// TODO: derive the seller from the authenticated caller once login issues
// real tokens.
const defaultSellerID uint = 1

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"required,gt=0"`
}

// ProductUpdateRequest defines the structure for partial product updates.
// Nil fields keep their stored values.
type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
}

// SellerInfo is the public view of a seller embedded in product listings
type SellerInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProductSummary is the reduced product view returned by the listing endpoint
type ProductSummary struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Seller      SellerInfo `json:"seller"`
}

// ProductHandler handles product CRUD requests
type ProductHandler struct {
	products repository.ProductRepository
}

// NewProductHandler creates a ProductHandler over the given repository
func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles retrieving all products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing products")

	products, err := h.products.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summary := ProductSummary{
			Name:        p.Name,
			Description: p.Description,
		}
		if p.Seller != nil {
			summary.Seller = SellerInfo{
				Username: p.Seller.Username,
				Email:    p.Seller.Email,
			}
		}
		summaries = append(summaries, summary)
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(summaries)))
	return c.JSON(http.StatusOK, summaries)
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseProductID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid product id",
		})
	}
	log.Info("Getting product by ID", zap.Uint("product_id", id))

	product, err := h.products.Get(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Product not found", zap.Uint("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	if err != nil {
		log.Error("Failed to get product",
			zap.Uint("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	prometheus.RecordProductOperation("get")
	log.Info("Product retrieved successfully",
		zap.Uint("product_id", id),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Product validation failed", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
		})
	}

	log.Info("Product creation request",
		zap.String("name", req.Name),
		zap.Int("price", req.Price))

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SellerID:    defaultSellerID,
	}

	if err := h.products.Create(c.Request().Context(), &product); err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created successfully",
		zap.String("product_id", strconv.FormatUint(uint64(product.ID), 10)),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct handles partially updating an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseProductID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid product id",
		})
	}
	log.Info("Updating product", zap.Uint("product_id", id))

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.Uint("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid request data",
		})
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Product not found for update", zap.Uint("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	if err != nil {
		log.Error("Failed to load product for update",
			zap.Uint("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	applyProductUpdate(product, &req)

	if err := h.products.Update(c.Request().Context(), product); err != nil {
		log.Error("Failed to update product",
			zap.Uint("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated successfully",
		zap.Uint("product_id", id),
		zap.String("name", product.Name),
		zap.Int("price", product.Price))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseProductID(c)
	if err != nil {
		log.Warn("Invalid product id", zap.String("product_id", c.Param("id")))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid product id",
		})
	}
	log.Info("Deleting product", zap.Uint("product_id", id))

	err = h.products.Delete(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Product not found for deletion", zap.Uint("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete product",
			zap.Uint("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}

// applyProductUpdate copies the fields present in the request onto the
// stored product. Nil fields are left untouched.
func applyProductUpdate(product *model.Product, req *ProductUpdateRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
}

func parseProductID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
