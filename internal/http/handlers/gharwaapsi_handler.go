// README: Gharwaapsi handler (route home, hostelmates, tatkal, papa-pay).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campusos/internal/modules/campus"
	"campusos/internal/modules/fare"
	"campusos/internal/service"
)

type GharwaapsiHandler struct {
	planner *service.HomePlanner
	fares   *fare.Engine
}

func NewGharwaapsiHandler(planner *service.HomePlanner, fares *fare.Engine) *GharwaapsiHandler {
	return &GharwaapsiHandler{planner: planner, fares: fares}
}

type routeReq struct {
	FromCity    string `json:"from_city"`
	ToCity      string `json:"to_city"`
	Category    string `json:"category"`
	HomeAddress string `json:"home_address"`
}

type papaPayReq struct {
	Amount    int    `json:"amount"`
	ParentUPI string `json:"parent_upi"`
}

// Route handles POST /api/gharwaapsi/route.
func (h *GharwaapsiHandler) Route(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.FromCity = strings.TrimSpace(req.FromCity)
	req.ToCity = strings.TrimSpace(req.ToCity)
	if req.FromCity == "" || req.ToCity == "" {
		writeError(c, http.StatusBadRequest, "missing from_city or to_city")
		return
	}
	if req.Category = strings.TrimSpace(req.Category); req.Category == "" {
		req.Category = fare.DefaultCategory
	}

	countFare("route", h.fares.Known(req.FromCity, req.ToCity))
	writeJSON(c, http.StatusOK, h.planner.Plan(c.Request.Context(), req.FromCity, req.ToCity, req.Category, req.HomeAddress))
}

// Hostelmates handles GET /api/gharwaapsi/hostelmates.
func (h *GharwaapsiHandler) Hostelmates(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.Hostelmates())
}

// Tatkal handles GET /api/gharwaapsi/tatkal.
func (h *GharwaapsiHandler) Tatkal(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.Tatkal())
}

// PapaPay handles POST /api/gharwaapsi/papa-pay.
func (h *GharwaapsiHandler) PapaPay(c *gin.Context) {
	var req papaPayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	resp, err := campus.PapaPay(req.Amount, req.ParentUPI)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
