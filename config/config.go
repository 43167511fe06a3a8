package config

import (
	"os"
	"path/filepath"
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
	defaultMemoryPoolSize     = 4
	defaultMongoCollection    = "users"
)

// Storage drivers accepted in storage.driver.
const (
	DriverGORM   = "gorm"
	DriverPGX    = "pgx"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Postgres is used by the gorm driver.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PGX is used by the pgx driver.
	PGX *PGXConfig `json:"pgx" yaml:"pgx"`

	// Mongo is used by the mongo driver.
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Memory is used by the memory driver.
	Memory *MemoryConfig `json:"memory" yaml:"memory"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the backend serving user lookups.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`

	// Queries slower than this are logged at warn level; zero uses the driver default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Pool wait statistics are sampled at this interval; zero uses the driver default.
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// PGXConfig defines the native pgx pool.
type PGXConfig struct {
	DSN               string        `json:"dsn" yaml:"dsn"`
	MaxConns          int32         `json:"maxConns" yaml:"maxConns"`
	MinConns          int32         `json:"minConns" yaml:"minConns"`
	MaxConnLifetime   time.Duration `json:"maxConnLifetime" yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `json:"maxConnIdleTime" yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `json:"healthCheckPeriod" yaml:"healthCheckPeriod"`

	// AcquireTimeout bounds the wait for a free connection; zero waits until the request context ends.
	AcquireTimeout time.Duration `json:"acquireTimeout" yaml:"acquireTimeout"`
}

// MongoConfig defines the MongoDB client.
type MongoConfig struct {
	URI         string `json:"uri" yaml:"uri"`
	Database    string `json:"database" yaml:"database"`
	Collection  string `json:"collection" yaml:"collection"`
	MaxPoolSize uint64 `json:"maxPoolSize" yaml:"maxPoolSize"`
}

// MemoryConfig defines the in-process driver.
type MemoryConfig struct {
	PoolSize int        `json:"poolSize" yaml:"poolSize"`
	Users    []SeedUser `json:"users" yaml:"users"`
}

// SeedUser is a user preloaded into the memory driver.
type SeedUser struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML, e.g. STORAGE_DRIVER -> storage.driver.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional settings and checks that the selected driver is configured.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
	}

	switch cfg.Storage.Driver {
	case DriverGORM:
		if cfg.Postgres == nil {
			return errors.New("storage driver gorm requires the postgres section")
		}
		// Lookups pin one connection; a read resolver would swap it for a replica pool.
		cfg.Postgres.Replicas = nil
	case DriverPGX:
		if cfg.PGX == nil || cfg.PGX.DSN == "" {
			return errors.New("storage driver pgx requires pgx.dsn")
		}
	case DriverMongo:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" || cfg.Mongo.Database == "" {
			return errors.New("storage driver mongo requires mongo.uri and mongo.database")
		}
		if cfg.Mongo.Collection == "" {
			cfg.Mongo.Collection = defaultMongoCollection
		}
	case DriverMemory:
		if cfg.Memory == nil {
			cfg.Memory = &MemoryConfig{}
		}
		if cfg.Memory.PoolSize <= 0 {
			cfg.Memory.PoolSize = defaultMemoryPoolSize
		}
	default:
		return errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return nil
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
