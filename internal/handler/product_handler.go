package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/repository"
	"github.com/gocatalog/catalog-api/internal/service"
	"github.com/gocatalog/catalog-api/internal/utils"
)

// ProductHandler handles product CRUD and action HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// notFoundMessage is the wording the behavioral suite matches on.
func notFoundMessage(id string) string {
	return fmt.Sprintf("Product with id '%s' was not found.", id)
}

// productID parses the :id path parameter. A non-numeric id can never name a
// product, so it reports not-found rather than bad-request.
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, notFoundMessage(c.Param("id")))
		return 0, false
	}
	return id, true
}

// requireJSON rejects create/update requests that do not carry a JSON body.
func requireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		utils.Error(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// respondError maps service errors to the HTTP status contract:
// validation failure 400, not-found 404, anything else 500.
func (h *ProductHandler) respondError(c *gin.Context, err error, id string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		utils.Error(c, http.StatusBadRequest, verr.Message)
		return
	}
	if errors.Is(err, utils.ErrNotFound) {
		utils.Error(c, http.StatusNotFound, notFoundMessage(id))
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("store operation failed")
	utils.Error(c, http.StatusInternalServerError, "Internal server error")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/products/%d", product.ID))
	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, c.Param("id"))
		return
	}
	if product == nil {
		utils.Error(c, http.StatusNotFound, notFoundMessage(c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	// Existence is checked before the media type so a PUT against an absent
	// id reports 404 regardless of how the body is framed.
	if c.ContentType() != "application/json" {
		product, err := h.productService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err, c.Param("id"))
			return
		}
		if product == nil {
			utils.Error(c, http.StatusNotFound, notFoundMessage(c.Param("id")))
			return
		}
		utils.Error(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id. Deletion is idempotent:
// an absent id still yields 204 with an empty body.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, c.Param("id"))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProducts handles GET /api/products with optional query filters.
// At most one filter dimension applies per request.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter repository.ListFilter

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "status must be AVAILABLE or DISABLED")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "price must be a number")
			return
		}
		filter.Price = &price
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "rating must be a number")
			return
		}
		filter.Rating = &rating
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, products)
}

// LikeProduct handles POST /api/products/:id/like
func (h *ProductHandler) LikeProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.productService.Like(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, c.Param("id"))
		return
	}
	if product == nil {
		utils.Error(c, http.StatusNotFound, notFoundMessage(c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, product)
}
