package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Product catalog providers.
const (
	CatalogProviderHTTP   = "http"
	CatalogProviderStatic = "static"
)

// Domain event types published after a committed write.
const (
	EventShopCreated  = "shop.created"
	EventPriceUpdated = "price.updated"
)

// RoleAdmin is the JWT role allowed to moderate shops.
const RoleAdmin = "admin"

// SRIDWGS84 is the spatial reference used for every stored point.
const SRIDWGS84 = 4326
