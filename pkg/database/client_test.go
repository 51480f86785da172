package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bidiq/bidiq/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (CI_DATABASE_URL set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	} else {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests.
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	stats, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Greater(t, stats.MaxOpen, 0)
	assert.False(t, stats.Saturated())
}

func TestPoolStats_Saturated(t *testing.T) {
	assert.True(t, PoolStats{InUse: 10, MaxOpen: 10, Waiting: 3}.Saturated())
	assert.False(t, PoolStats{InUse: 10, MaxOpen: 10}.Saturated(), "busy without queueing is fine")
	assert.False(t, PoolStats{InUse: 4, MaxOpen: 10, Waiting: 3}.Saturated())
	assert.False(t, PoolStats{InUse: 1, Waiting: 1}.Saturated(), "unlimited pool never saturates")
}

func TestSearchSessionRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.SearchSession.Create().
		SetID("search-1").
		SetUserID("user-1").
		SetUfs([]string{"SP", "RJ"}).
		SetSectors([]string{"vestuario"}).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "search-1", created.ID)

	fetched, err := client.SearchSession.Get(ctx, "search-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", fetched.UserID)
	assert.Equal(t, []string{"SP", "RJ"}, fetched.Ufs)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_CONN_MAX_LIFETIME",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	idleAboveOpen := valid
	idleAboveOpen.MaxIdleConns = 20
	assert.Error(t, idleAboveOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}
