package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies the documented priority: a non-zero
// field of a later config overrides the same field of an earlier one, while
// zero fields do not erase earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	cfg, err := newConfigBuilder().
		with(&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:1111", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{DSN: "memory://"}},
		}).
		with(&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:2222"},
		}).
		build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "memory://", cfg.Storage.DB.DSN)
}

func TestBuild_FromDefaultsToSMTPUser(t *testing.T) {
	cfg, err := newConfigBuilder().
		with(&StructuredConfig{Notifier: Notifier{SMTPUser: "mailer@example.com"}}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "mailer@example.com", cfg.Notifier.From)
}

// ── withEnv / withFlags / withJSON ───────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": "postgres://env/db"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://env/db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().with(&StructuredConfig{}).withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "sqlite:///tmp/a.db"}},
	})

	b := newConfigBuilder().with(&StructuredConfig{JSONFilePath: path}).withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "sqlite:///tmp/a.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().with(&StructuredConfig{JSONFilePath: "/does/not/exist.json"}).withJSON()
	require.Error(t, b.err)
}

// ── GetStructuredConfig / GetClientConfig ────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":          "localhost:1111",
		"STORAGE_DB_DATABASE_URI": "memory://",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:2222"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "memory://", cfg.Storage.DB.DSN)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:3333"},
	})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:2222", "-c", path})
	require.NoError(t, err)
	assert.Equal(t, "localhost:3333", cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_InvalidNotifier(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-smtp-host", "smtp.example.com"})
	require.ErrorIs(t, err, ErrInvalidNotifierConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FromJSON(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "https://accounts.example.com", "request_timeout": "3s"},
	})

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}
