package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdash/internal/eventbus"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 30*time.Second, cfg.LogRefresh())
	assert.Equal(t, 15, cfg.Search.SuggestionLimit)
	assert.Equal(t, 10, cfg.Search.JobListSuggestionLimit)
	assert.Equal(t, 10000, cfg.Search.ExportLimit)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://jobs.internal:9000"
	cfg.Search.PageSize = 50
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://jobs.internal:9000", loaded.API.BaseURL)
	assert.Equal(t, 50, loaded.Search.PageSize)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"http://x:1\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path, nil).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://x:1", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, 300, cfg.Search.DebounceMillis)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := NewConfigServiceAt(path, bus).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)

	select {
	case e := <-got:
		assert.Equal(t, path, e.(eventbus.ConfigLoadedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url = "), 0644))

	_, err := NewConfigServiceAt(path, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyEnv(cfg, envMap(map[string]string{
		"JOBDASH_API_URL":     " http://override:8081 ",
		"JOBDASH_TIMEOUT":     "5",
		"JOBDASH_RPS":         "2.5",
		"JOBDASH_PAGE_SIZE":   "100",
		"JOBDASH_DEFAULT_TAB": "jobs",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://override:8081", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.InDelta(t, 2.5, cfg.API.RequestsPerSecond, 1e-9)
	assert.Equal(t, 100, cfg.Search.PageSize)
	assert.Equal(t, "jobs", cfg.UI.DefaultTab)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	err := ApplyEnv(DefaultConfig(), envMap(map[string]string{"JOBDASH_TIMEOUT": "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JOBDASH_TIMEOUT")

	require.NoError(t, ApplyEnv(DefaultConfig(), noEnv))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = ""
	cfg.Search.PageSize = 33
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "page_size")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JOBDASH_TEST_DOTENV=from-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("JOBDASH_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("JOBDASH_TEST_DOTENV"))
}
