package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusos/internal/modules/campus"
)

type FestPassHandler struct{}

func NewFestPassHandler() *FestPassHandler {
	return &FestPassHandler{}
}

func (h *FestPassHandler) Featured(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.Fests().Featured)
}

// List handles GET /api/festpass/list with the featured fest alongside the rest.
func (h *FestPassHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.Fests())
}

// Book handles POST /api/festpass/book?fest_name=&group_size=. group_size defaults to 1.
func (h *FestPassHandler) Book(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("group_size", "1"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid group_size")
		return
	}
	b, err := campus.BookFest(c.Query("fest_name"), size)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}
