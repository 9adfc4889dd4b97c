package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg := InitConfig("")

	assert.Equal(t, "boleias", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Match.StoreTimeout)
	assert.Zero(t, cfg.Match.CompatibleLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "boleias.entity_changed", cfg.NSQ.Topic)
	assert.Equal(t, 100*time.Millisecond, cfg.Audit.InitialDelay)
	assert.Equal(t, 16, cfg.Audit.MaxInFlight)
}

func TestInitConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "SERVER_PORT=9090\nDB_HOST=db.internal\nMATCH_STORE_TIMEOUT=750ms\nRATE_LIMIT_REQUESTS=3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_HOST", "db.from-env")
	t.Setenv("COORDINATOR_PIN_HASH", "$2a$10$abc")

	cfg := InitConfig(path)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.from-env", cfg.Database.Host)
	assert.Equal(t, 750*time.Millisecond, cfg.Match.StoreTimeout)
	assert.Equal(t, 3, cfg.RateLimit.Requests)
	assert.Equal(t, "$2a$10$abc", cfg.Coordinator.PINHash)
}

func TestInitConfig_BadDurationFallsBack(t *testing.T) {
	t.Setenv("MATCH_STORE_TIMEOUT", "soon")

	cfg := InitConfig("")
	assert.Equal(t, 5*time.Second, cfg.Match.StoreTimeout)
}

func TestInitConfig_MissingFile(t *testing.T) {
	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "boleias", cfg.App.Name)
}
