package notification

import (
	"context"
	"fmt"

	"consultly/utils"

	"firebase.google.com/go/v4/messaging"
)

// PushSender delivers a push message to a single device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// FCMPush sends through Firebase Cloud Messaging. Pushes are dropped when
// Firebase was not initialized at startup.
type FCMPush struct{}

func (FCMPush) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
