package webhook

import (
	"context"

	"consultly/models"
	"consultly/services/zoom"

	sessionRepo "consultly/database/repository/session"
)

// WebhookService ingests Zoom webhook events and reconciles session state
// from them. The meeting provider is the source of truth for what actually
// happened; this service folds its reports back into the store.
type WebhookService interface {
	// VerifySignature checks the x-zm-signature header against the raw body.
	VerifySignature(signature, timestamp string, body []byte) error
	// ValidateEndpoint answers the endpoint.url_validation handshake.
	ValidateEndpoint(plainToken string) models.ZoomURLValidationResponse
	// HandleEvent dispatches one verified event. Reconciliation failures are
	// logged, not returned; only a malformed payload comes back as an error.
	HandleEvent(ctx context.Context, event models.ZoomWebhookEvent) error
}

// DefaultWebhookService is the production implementation.
type DefaultWebhookService struct {
	Sessions sessionRepo.SessionRepository
	Zoom     zoom.Client
	Secret   string
}

func NewDefaultWebhookService(sessions sessionRepo.SessionRepository, zoomClient zoom.Client, secret string) WebhookService {
	return &DefaultWebhookService{Sessions: sessions, Zoom: zoomClient, Secret: secret}
}
