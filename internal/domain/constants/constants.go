// Package constants holds string values shared between configuration and infrastructure.
package constants

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint in Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
