package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"consultly/models"
	"consultly/services/webhook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives meeting-provider callbacks.
type WebhookHandler struct {
	Webhooks webhook.WebhookService
}

// ZoomWebhookHandler handles POST /api/webhooks/zoom. Zoom retries on
// non-2xx responses, so everything past signature and body validation is
// acknowledged with 200 even when reconciliation was a no-op.
func (h *WebhookHandler) ZoomWebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unreadable webhook body"})
		return
	}

	var event models.ZoomWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed webhook body"})
		return
	}

	// The endpoint verification handshake answers with the exact challenge
	// shape Zoom expects, outside the usual envelope.
	if event.Event == models.ZoomEventURLValidation {
		var payload models.ZoomEventPayload
		if len(event.Payload) > 0 {
			_ = json.Unmarshal(event.Payload, &payload)
		}
		if payload.PlainToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "plainToken missing"})
			return
		}
		c.JSON(http.StatusOK, h.Webhooks.ValidateEndpoint(payload.PlainToken))
		return
	}

	sig := c.GetHeader("x-zm-signature")
	ts := c.GetHeader("x-zm-request-timestamp")
	if err := h.Webhooks.VerifySignature(sig, ts, body); err != nil {
		getLogger(c).Warn("Webhook signature rejected", zap.String("event", event.Event), zap.Error(err))
		respondError(c, err)
		return
	}

	if err := h.Webhooks.HandleEvent(c.Request.Context(), event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
}
