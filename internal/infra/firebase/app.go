// Package firebase initializes the Firebase app shared by the order store and push notifications.
package firebase

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp creates the Firebase app from configuration.
// Without a credentials file, application default credentials (or the emulator) are used.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	var appConfig *firebase.Config
	var opts []option.ClientOption

	if cfg.Firebase != nil {
		if cfg.Firebase.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.Bool("credentials_file", len(opts) > 0))

	return app, nil
}
