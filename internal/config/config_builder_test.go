package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

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

// ── newConfigBuilder ─────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://story-api.example.com/v1"}},
		&StructuredConfig{Storage: Storage{DB: DB{Path: "/tmp/client.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://story-api.example.com/v1", cfg.Adapter.BaseURL)
	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.Path)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://from-env.example.com"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://from-flags.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.Adapter.BaseURL)
}

// ── withEnv ──────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("ADAPTER_BASE_URL", "https://story-api.example.com/v1")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_PATH", "/tmp/client.db")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "1.2.3", b.configs[0].App.Version)
	assert.Equal(t, "https://story-api.example.com/v1", b.configs[0].Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, b.configs[0].Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/client.db", b.configs[0].Storage.DB.Path)
}

func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ─────────────────────────────────────────────────────────────────

func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredConfig{
		App:     App{Version: "json-version"},
		Adapter: Adapter{BaseURL: "https://from-json.example.com"},
	}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "https://from-json.example.com", b.configs[1].Adapter.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredConfig{App: App{Version: "last-wins"}}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "https://story-api.example.com/v1"},
		Storage: ClientStorage{DBPath: "/tmp/client.db"},
	}
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate_MissingBaseURL(t *testing.T) {
	cfg := &ClientConfig{Storage: ClientStorage{DBPath: "/tmp/client.db"}}
	assert.ErrorIs(t, cfg.validate(), ErrNoBaseURL)
}

func TestClientConfig_Validate_MissingDBPath(t *testing.T) {
	cfg := &ClientConfig{Adapter: ClientAdapter{BaseURL: "https://story-api.example.com/v1"}}
	assert.ErrorIs(t, cfg.validate(), ErrNoDBPath)
}

func TestClientConfig_Validate_AllMissing(t *testing.T) {
	cfg := &ClientConfig{}
	err := cfg.validate()
	assert.ErrorIs(t, err, ErrNoBaseURL)
	assert.ErrorIs(t, err, ErrNoDBPath)
}
