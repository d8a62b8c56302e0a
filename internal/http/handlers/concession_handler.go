package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campusos/internal/modules/campus"
	"campusos/internal/modules/fare"
)

type ConcessionHandler struct {
	fares *fare.Engine
}

func NewConcessionHandler(fares *fare.Engine) *ConcessionHandler {
	return &ConcessionHandler{fares: fares}
}

type concessionReq struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	TravelClass string `json:"travel_class"`
	Category    string `json:"category"`
}

type distanceResp struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	DistanceKm  int    `json:"distance_km"`
}

type stationsResp struct {
	Stations []string `json:"stations"`
}

type bonafideResp struct {
	Certificate campus.Certificate `json:"certificate"`
	Message     string             `json:"message"`
}

// bind decodes and normalizes a concession request. Unknown classes and
// categories are passed through; the engine falls back for them.
func (h *ConcessionHandler) bind(c *gin.Context) (concessionReq, bool) {
	var req concessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return req, false
	}
	req.FromStation = strings.TrimSpace(req.FromStation)
	req.ToStation = strings.TrimSpace(req.ToStation)
	if req.FromStation == "" || req.ToStation == "" {
		writeError(c, http.StatusBadRequest, "missing from_station or to_station")
		return req, false
	}
	if req.TravelClass = strings.TrimSpace(req.TravelClass); req.TravelClass == "" {
		req.TravelClass = fare.DefaultClass
	}
	if req.Category = strings.TrimSpace(req.Category); req.Category == "" {
		req.Category = fare.DefaultCategory
	}
	return req, true
}

// Stations handles GET /api/concession/stations.
func (h *ConcessionHandler) Stations(c *gin.Context) {
	writeJSON(c, http.StatusOK, stationsResp{Stations: h.fares.Stations()})
}

// Distance handles GET /api/concession/distance?from=&to=.
func (h *ConcessionHandler) Distance(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing from or to")
		return
	}
	countFare("distance", h.fares.Known(from, to))
	writeJSON(c, http.StatusOK, distanceResp{FromStation: from, ToStation: to, DistanceKm: h.fares.Distance(from, to)})
}

// Calculate handles POST /api/concession/calculate.
func (h *ConcessionHandler) Calculate(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	countFare("concession", h.fares.Known(req.FromStation, req.ToStation))
	writeJSON(c, http.StatusOK, h.fares.CalculateConcession(req.FromStation, req.ToStation, req.TravelClass, req.Category))
}

// Bonafide handles POST /api/concession/bonafide. With ?format=pdf the
// certificate is returned as a PDF attachment.
func (h *ConcessionHandler) Bonafide(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	countFare("bonafide", h.fares.Known(req.FromStation, req.ToStation))
	result := h.fares.CalculateConcession(req.FromStation, req.ToStation, req.TravelClass, req.Category)
	cert := campus.NewCertificate(campus.DefaultStudent, req.TravelClass, req.Category, result)

	if strings.EqualFold(c.Query("format"), "pdf") {
		body, filename, err := campus.RenderPDF(cert)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", body)
		return
	}

	writeJSON(c, http.StatusOK, bonafideResp{Certificate: cert, Message: campus.CertificateMessage})
}
