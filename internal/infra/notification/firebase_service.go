package notification

import (
	"context"

	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// NotifyDevice sends a push notification to a single device token
func (s *firebaseService) NotifyDevice(ctx context.Context, token, title, body string, data map[string]string) error {
	message := buildMessage(token, title, body, data)

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func buildMessage(token, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
}
