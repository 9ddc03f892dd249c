package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"consultly/models"
	"consultly/utils"
)

// VerifySignature validates Zoom's request signature:
//
//	v0=hex(HMAC-SHA256(secret, "v0:{timestamp}:{body}"))
//
// Verification is skipped when no secret is configured, or when the request
// carries neither header (local development against unsigned requests).
func (s *DefaultWebhookService) VerifySignature(signature, timestamp string, body []byte) error {
	if s.Secret == "" {
		return nil
	}
	if signature == "" && timestamp == "" {
		return nil
	}
	if signature == "" || timestamp == "" {
		return &utils.UnauthorizedError{Message: "incomplete webhook signature headers"}
	}

	mac := hmac.New(sha256.New, []byte(s.Secret))
	fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return &utils.UnauthorizedError{Message: "webhook signature mismatch"}
	}
	return nil
}

// ValidateEndpoint computes the challenge response Zoom expects when it
// verifies the webhook URL: the plain token echoed back alongside its
// HMAC-SHA256 under the shared secret.
func (s *DefaultWebhookService) ValidateEndpoint(plainToken string) models.ZoomURLValidationResponse {
	mac := hmac.New(sha256.New, []byte(s.Secret))
	mac.Write([]byte(plainToken))
	return models.ZoomURLValidationResponse{
		PlainToken:     plainToken,
		EncryptedToken: hex.EncodeToString(mac.Sum(nil)),
	}
}
