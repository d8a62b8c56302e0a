package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusos/internal/modules/campus"
	"campusos/internal/modules/debt"
)

type CampusPayHandler struct{}

func NewCampusPayHandler() *CampusPayHandler {
	return &CampusPayHandler{}
}

type simplifyReq struct {
	Debts          []debt.Debt `json:"debts"`
	ReferenceParty string      `json:"reference_party"`
}

func (h *CampusPayHandler) Balance(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.MessCardBalance())
}

func (h *CampusPayHandler) Spending(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.RecentSpending())
}

func (h *CampusPayHandler) Categories(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.PayCategories())
}

// Debts handles GET /api/campuspay/debts with the hostel's open IOUs.
func (h *CampusPayHandler) Debts(c *gin.Context) {
	writeJSON(c, http.StatusOK, debt.Simplify(campus.HostelDebts(), debt.DefaultReference))
}

// Simplify handles POST /api/campuspay/simplify.
func (h *CampusPayHandler) Simplify(c *gin.Context) {
	var req simplifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := debt.Validate(req.Debts, req.ReferenceParty); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, debt.Simplify(req.Debts, req.ReferenceParty))
}

// Settle handles POST /api/campuspay/settle?name=.
func (h *CampusPayHandler) Settle(c *gin.Context) {
	s, err := campus.Settle(c.Query("name"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, s)
}
