// Package constants holds identifiers shared between config and infra providers.
package constants

// Change-event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Snapshot store drivers.
const (
	SnapshotDriverFile  = "file"
	SnapshotDriverRedis = "redis"
)

// Directions providers.
const (
	DirectionsProviderWebAPI = "webapi"
	DirectionsProviderTiles  = "tiles"
)

// Snapshot keys.
const (
	SnapshotKeyLocations  = "locations"
	SnapshotKeyCategories = "categories"
)
