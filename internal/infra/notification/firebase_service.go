package notification

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// messagingClient is the subset of *messaging.Client used for topic pushes
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// noopService is used when owner push notifications are disabled
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendTopicNotification(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopNotification] Push disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// NewNotificationService creates the owner push service based on configuration
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	if params.Config.Firebase == nil || !params.Config.Firebase.Push {
		params.Logger.Info("Owner push notifications disabled, using no-op notifier")

		return &noopService{logger: params.Logger}, nil
	}

	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, params.Logger), nil
}

func newFirebaseService(client messagingClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("notification topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}
