package utils

import (
	"context"

	"consultly/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCMClient is the Firebase messaging client; nil when push delivery is not
// configured, in which case push notifications are skipped.
var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase app and messaging client from the
// configured service-account credentials file. Missing credentials disable
// the push channel rather than failing startup.
func FirebaseInit() {
	path := config.AppConfig.FirebaseCredentialsFile
	if path == "" {
		GetLogger().Warn("firebase credentials not configured; push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(path))
	if err != nil {
		GetLogger().Error("firebase: error initializing app; push notifications disabled", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		GetLogger().Error("firebase: error getting messaging client; push notifications disabled", zap.Error(err))
		return
	}

	FCMClient = client
}
