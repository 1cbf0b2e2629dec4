// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

const (
	// CacheKeyHome is the redis key for the cached home page payload.
	CacheKeyHome = "catalog:home"
	// CacheKeyProductPrefix prefixes redis keys for cached product details, followed by the slug.
	CacheKeyProductPrefix = "catalog:product:"
)
