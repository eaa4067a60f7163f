package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultCatalogTimeout     = 3 * time.Second
	defaultRefreshSchedule    = "@every 1h"
	defaultRefreshStaleAfter  = 6 * time.Hour
	defaultRefreshBatchSize   = 200
	defaultRefreshWorkers     = 4
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins lists the CORS origins of the web client, "*" when empty
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Reporting holds the proximity and ownership rules of price reports
	Reporting *ReportingConfig `json:"reporting" yaml:"reporting"`

	// Consensus holds the price aggregation parameters
	Consensus *ConsensusConfig `json:"consensus" yaml:"consensus"`

	// Catalog configures the external product catalog client
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// QRCode configuration for shop share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Refresh configures the scheduled stale price recomputation
	Refresh *RefreshConfig `json:"refresh" yaml:"refresh"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// File enables size-rotated file output next to stdout when set
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// StorageConfig selects the persistence driver
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates the postgres schema on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// ReportingConfig defines the location and ownership rules for price reports
type ReportingConfig struct {
	MaxReportDistanceMeters    float64       `json:"maxReportDistanceMeters" yaml:"maxReportDistanceMeters"`
	MaxGPSAccuracyMeters       float64       `json:"maxGPSAccuracyMeters" yaml:"maxGPSAccuracyMeters"`
	AtShopDistanceMeters       float64       `json:"atShopDistanceMeters" yaml:"atShopDistanceMeters"`
	CreationSearchRadiusMeters float64       `json:"creationSearchRadiusMeters" yaml:"creationSearchRadiusMeters"`
	MaxSearchRadiusMeters      float64       `json:"maxSearchRadiusMeters" yaml:"maxSearchRadiusMeters"`
	ModifyWindow               time.Duration `json:"modifyWindow" yaml:"modifyWindow"`
	HistoryDays                int           `json:"historyDays" yaml:"historyDays"`
	HistoryLimit               int           `json:"historyLimit" yaml:"historyLimit"`
	MaxHistoryLimit            int           `json:"maxHistoryLimit" yaml:"maxHistoryLimit"`
}

// ConsensusConfig defines the price aggregation parameters
type ConsensusConfig struct {
	MinReports         int           `json:"minReports" yaml:"minReports"`
	RecentWindowDays   int           `json:"recentWindowDays" yaml:"recentWindowDays"`
	TolerancePct       float64       `json:"tolerancePct" yaml:"tolerancePct"`
	CredibilityTimeout time.Duration `json:"credibilityTimeout" yaml:"credibilityTimeout"`
}

// CatalogConfig defines the product catalog client
type CatalogConfig struct {
	// Provider is "http" or "static"
	Provider string        `json:"provider" yaml:"provider"`
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Products is the product list served by the static provider
	Products []CatalogProduct `json:"products" yaml:"products"`
}

// CatalogProduct is one statically configured product
type CatalogProduct struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RefreshConfig defines the stale price refresh job
type RefreshConfig struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	Schedule   string        `json:"schedule" yaml:"schedule"`
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`
	BatchSize  int           `json:"batchSize" yaml:"batchSize"`
	Workers    int           `json:"workers" yaml:"workers"`
}

// ReportingOrDefault returns the reporting section with zero values replaced by defaults.
func (c *Config) ReportingOrDefault() ReportingConfig {
	var r ReportingConfig
	if c != nil && c.Reporting != nil {
		r = *c.Reporting
	}

	if r.MaxReportDistanceMeters <= 0 {
		r.MaxReportDistanceMeters = 50
	}
	if r.MaxGPSAccuracyMeters <= 0 {
		r.MaxGPSAccuracyMeters = 100
	}
	if r.AtShopDistanceMeters <= 0 {
		r.AtShopDistanceMeters = 10
	}
	// A creation search narrower than the reporting radius would let two
	// shops exist within reporting range of each other.
	r.CreationSearchRadiusMeters = max(r.CreationSearchRadiusMeters, r.MaxReportDistanceMeters)
	if r.MaxSearchRadiusMeters <= 0 {
		r.MaxSearchRadiusMeters = 5000
	}
	if r.ModifyWindow <= 0 {
		r.ModifyWindow = 24 * time.Hour
	}
	if r.HistoryDays <= 0 {
		r.HistoryDays = 30
	}
	if r.HistoryLimit <= 0 {
		r.HistoryLimit = 50
	}
	if r.MaxHistoryLimit <= 0 {
		r.MaxHistoryLimit = 200
	}

	return r
}

// ConsensusOrDefault returns the consensus section. Zero values are
// defaulted by the pricing engine itself.
func (c *Config) ConsensusOrDefault() ConsensusConfig {
	if c == nil || c.Consensus == nil {
		return ConsensusConfig{}
	}

	return *c.Consensus
}

// RefreshOrDefault returns the refresh section with zero values replaced by defaults.
func (c *Config) RefreshOrDefault() RefreshConfig {
	var r RefreshConfig
	if c != nil && c.Refresh != nil {
		r = *c.Refresh
	}

	if strings.TrimSpace(r.Schedule) == "" {
		r.Schedule = defaultRefreshSchedule
	}
	if r.StaleAfter <= 0 {
		r.StaleAfter = defaultRefreshStaleAfter
	}
	if r.BatchSize <= 0 {
		r.BatchSize = defaultRefreshBatchSize
	}
	if r.Workers <= 0 {
		r.Workers = defaultRefreshWorkers
	}

	return r
}

// StorageDriver returns the configured persistence driver, postgres by default.
func (c *Config) StorageDriver() string {
	if c == nil || c.Storage == nil || strings.TrimSpace(c.Storage.Driver) == "" {
		return "postgres"
	}

	return strings.ToLower(strings.TrimSpace(c.Storage.Driver))
}

// AccessTokenTTL returns the access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	if c == nil || c.Auth == nil || c.Auth.AccessTokenTTL <= 0 {
		return defaultAccessTokenTTL
	}

	return c.Auth.AccessTokenTTL
}

// CatalogTimeout returns the catalog request timeout.
func (c *Config) CatalogTimeout() time.Duration {
	if c == nil || c.Catalog == nil || c.Catalog.Timeout <= 0 {
		return defaultCatalogTimeout
	}

	return c.Catalog.Timeout
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
