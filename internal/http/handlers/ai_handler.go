// README: Yatra handler (CampusGPT chat, quick chips, sample group trip).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campusos/internal/ai"
	"campusos/internal/modules/campus"
)

// QuotaReader reports the chat allowance left for a client.
type QuotaReader interface {
	Remaining(ctx context.Context, clientID string) (int, error)
	Limit() int
}

type YatraHandler struct {
	chat  ai.Responder
	quota QuotaReader
}

// NewYatraHandler builds the Yatra handler. quota may be nil when no quota
// store is configured.
func NewYatraHandler(chat ai.Responder, quota QuotaReader) *YatraHandler {
	return &YatraHandler{chat: chat, quota: quota}
}

type chatReq struct {
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

type chatResp struct {
	Reply         string `json:"reply"`
	TripGenerated bool   `json:"trip_generated"`
}

type quotaResp struct {
	Enabled   bool `json:"enabled"`
	Limit     int  `json:"limit,omitempty"`
	Remaining int  `json:"remaining"`
}

type chipsResp struct {
	Chips []string `json:"chips"`
}

// Chat handles POST /api/yatra/chat. Provider failures never surface here;
// the responder degrades to a local reply.
func (h *YatraHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	reply, trip := h.chat.GetReply(c.Request.Context(), req.Message, req.History)
	writeJSON(c, http.StatusOK, chatResp{Reply: reply, TripGenerated: trip})
}

// Quota handles GET /api/yatra/quota for the calling client.
func (h *YatraHandler) Quota(c *gin.Context) {
	if h.quota == nil {
		writeJSON(c, http.StatusOK, quotaResp{Enabled: false})
		return
	}
	n, err := h.quota.Remaining(c.Request.Context(), ai.ClientID(c.Request.Context()))
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "quota unavailable")
		return
	}
	writeJSON(c, http.StatusOK, quotaResp{Enabled: true, Limit: h.quota.Limit(), Remaining: n})
}

// Chips handles GET /api/yatra/chips.
func (h *YatraHandler) Chips(c *gin.Context) {
	writeJSON(c, http.StatusOK, chipsResp{Chips: campus.QuickChips()})
}

// Plan handles GET /api/yatra/plan.
func (h *YatraHandler) Plan(c *gin.Context) {
	writeJSON(c, http.StatusOK, campus.SampleTripPlan())
}
