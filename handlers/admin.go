package handlers

import (
	"net/http"

	"consultly/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the platform dashboard.
type AdminHandler struct {
	Admin admin.AdminService
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Admin.Dashboard()
	if err != nil {
		getLogger(c).Error("Dashboard aggregation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Dashboard", "data": stats})
}
