package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusos/internal/modules/campus"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard handles GET /api/dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.GetDashboard())
}

// Kharcha handles GET /api/kharcha/report.
func (h *DashboardHandler) Kharcha(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.Kharcha())
}
