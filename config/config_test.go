package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: userlookup
  log:
    level: debug
http:
  port: 9090
storage:
  driver: memory
  slowQueryThreshold: 150ms
memory:
  poolSize: 2
  users:
    - id: 11111111-1111-1111-1111-111111111111
      name: Alice
pgx:
  dsn: postgres://localhost/test
  acquireTimeout: 2s
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "userlookup", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 150*time.Millisecond, cfg.Storage.SlowQueryThreshold)
	require.NotNil(t, cfg.Memory)
	assert.Equal(t, 2, cfg.Memory.PoolSize)
	require.Len(t, cfg.Memory.Users, 1)
	assert.Equal(t, "Alice", cfg.Memory.Users[0].Name)
	require.NotNil(t, cfg.PGX)
	assert.Equal(t, 2*time.Second, cfg.PGX.AcquireTimeout)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)
	t.Chdir(dir)
	t.Setenv("STORAGE_DRIVER", "pgx")
	t.Setenv("PGX_ACQUIRETIMEOUT", "750ms")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, DriverPGX, cfg.Storage.Driver)
	assert.Equal(t, 750*time.Millisecond, cfg.PGX.AcquireTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("empty driver falls back to memory", func(t *testing.T) {
		cfg := &Config{}

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, DriverMemory, cfg.Storage.Driver)
		assert.Equal(t, defaultMemoryPoolSize, cfg.Memory.PoolSize)
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("driver name is normalized", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: " PGX "}, PGX: &PGXConfig{DSN: "postgres://x"}}

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, DriverPGX, cfg.Storage.Driver)
	})

	t.Run("mongo collection default", func(t *testing.T) {
		cfg := &Config{
			Storage: StorageConfig{Driver: DriverMongo},
			Mongo:   &MongoConfig{URI: "mongodb://localhost", Database: "db"},
		}

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, defaultMongoCollection, cfg.Mongo.Collection)
	})

	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{name: "gorm without postgres", cfg: &Config{Storage: StorageConfig{Driver: DriverGORM}}, want: "postgres section"},
		{name: "pgx without dsn", cfg: &Config{Storage: StorageConfig{Driver: DriverPGX}, PGX: &PGXConfig{}}, want: "pgx.dsn"},
		{name: "mongo without database", cfg: &Config{Storage: StorageConfig{Driver: DriverMongo}, Mongo: &MongoConfig{URI: "mongodb://x"}}, want: "mongo.database"},
		{name: "unknown driver", cfg: &Config{Storage: StorageConfig{Driver: "sqlite"}}, want: `unknown storage driver "sqlite"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.applyDefaults()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
