package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "Product Catalog REST API Service"

// HealthHandler provides the index and health endpoints.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// GetIndex responds with a static service descriptor. The liveness check of
// the behavioral suite reads the service name from here.
func (h *HealthHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": h.version,
		"paths": gin.H{
			"products": "/api/products",
		},
	})
}

// GetHealth responds with the service liveness status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
