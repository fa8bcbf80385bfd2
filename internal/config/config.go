package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"jobdash/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	API       APISettings    `toml:"api"`
	Search    SearchSettings `toml:"search"`
	TokenPath string         `toml:"token_path"`
	LogFile   string         `toml:"log_file"`
	UI        UISettings     `toml:"ui"`
}

// APISettings describes how to reach the backend
type APISettings struct {
	BaseURL           string  `toml:"base_url"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// SearchSettings tunes autocomplete and paging
type SearchSettings struct {
	DebounceMillis         int `toml:"debounce_ms"`
	SuggestionLimit        int `toml:"suggestion_limit"`
	JobListSuggestionLimit int `toml:"joblist_suggestion_limit"`
	PageSize               int `toml:"page_size"`
	ExportLimit            int `toml:"export_limit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultTab        string `toml:"default_tab"`
	LogRefreshSeconds int    `toml:"log_refresh_seconds"`
	LogLines          int    `toml:"log_lines"`
}

// Timeout is the per-request HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Debounce is the autocomplete quiescence window
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMillis) * time.Millisecond
}

// LogRefresh is the admin log polling interval
func (c *Config) LogRefresh() time.Duration {
	return time.Duration(c.UI.LogRefreshSeconds) * time.Second
}

// Validate rejects values the client can't work with
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is empty"))
	}
	if c.API.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds))
	}
	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("api.requests_per_second must not be negative, got %v", c.API.RequestsPerSecond))
	}
	if c.Search.DebounceMillis < 0 {
		errs = append(errs, fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMillis))
	}
	if c.Search.SuggestionLimit <= 0 || c.Search.JobListSuggestionLimit <= 0 {
		errs = append(errs, errors.New("suggestion limits must be positive"))
	}
	switch c.Search.PageSize {
	case 10, 20, 50, 100:
	default:
		errs = append(errs, fmt.Errorf("search.page_size must be one of 10, 20, 50, 100, got %d", c.Search.PageSize))
	}
	if c.Search.ExportLimit <= 0 {
		errs = append(errs, fmt.Errorf("search.export_limit must be positive, got %d", c.Search.ExportLimit))
	}
	if c.UI.LogRefreshSeconds <= 0 {
		errs = append(errs, fmt.Errorf("ui.log_refresh_seconds must be positive, got %d", c.UI.LogRefreshSeconds))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the jobdash directory under the user config dir
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "jobdash")
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.API.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values from JOBDASH_* variables
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("JOBDASH_API_URL", &cfg.API.BaseURL)
	str("JOBDASH_TOKEN_PATH", &cfg.TokenPath)
	str("JOBDASH_LOG_FILE", &cfg.LogFile)
	str("JOBDASH_DEFAULT_TAB", &cfg.UI.DefaultTab)

	for key, dst := range map[string]*int{
		"JOBDASH_TIMEOUT":     &cfg.API.TimeoutSeconds,
		"JOBDASH_BURST":       &cfg.API.Burst,
		"JOBDASH_DEBOUNCE_MS": &cfg.Search.DebounceMillis,
		"JOBDASH_PAGE_SIZE":   &cfg.Search.PageSize,
		"JOBDASH_LOG_REFRESH": &cfg.UI.LogRefreshSeconds,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}

	if v, ok := lookup("JOBDASH_RPS"); ok && strings.TrimSpace(v) != "" {
		rps, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("JOBDASH_RPS: %w", err)
		}
		cfg.API.RequestsPerSecond = rps
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:           "http://127.0.0.1:8081",
			TimeoutSeconds:    10,
			RequestsPerSecond: 20,
			Burst:             10,
		},
		Search: SearchSettings{
			DebounceMillis:         300,
			SuggestionLimit:        15,
			JobListSuggestionLimit: 10,
			PageSize:               20,
			ExportLimit:            10000,
		},
		TokenPath: filepath.Join(dir, "token"),
		LogFile:   "jobdash.log",
		UI: UISettings{
			DefaultTab:        "dashboard",
			LogRefreshSeconds: 30,
			LogLines:          100,
		},
	}
}
