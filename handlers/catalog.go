package handlers

import (
	"net/http"

	"consultly/models"
	"consultly/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the consultation-service catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

// CreateServiceHandler handles POST /api/services (provider/admin).
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Catalog.Create(&svc); err != nil {
		getLogger(c).Warn("Service creation failed", zap.String("name", svc.Name), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Service created", "data": svc})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service", "data": svc})
}

// ListServicesHandler handles GET /api/services?active=true.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	services, err := h.Catalog.List(activeOnly)
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Services", "data": services})
}

// UpdateServiceHandler handles PUT /api/services/:id (provider/admin).
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")

	var upd models.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Catalog.Update(id, upd)
	if err != nil {
		getLogger(c).Warn("Service update failed", zap.String("serviceID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service updated", "data": svc})
}

// DeleteServiceHandler handles DELETE /api/services/:id (admin).
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Catalog.Delete(id); err != nil {
		getLogger(c).Warn("Service delete failed", zap.String("serviceID", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted"})
}
