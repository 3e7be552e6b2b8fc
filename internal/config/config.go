// Package config loads and hot-reloads sofer configuration through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mendelk/sofer/internal/format"
)

// Manager handles loading and hot-reloading configuration. Each Manager
// owns its own viper instance, so independent managers never share state.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file. Defaults are
// registered per leaf key so a file that sets one key under a section
// still inherits the defaults for its siblings.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	cm.v.SetDefault("defaults.book", defaults.Defaults.Book)
	cm.v.SetDefault("defaults.sefer", defaults.Defaults.Sefer)
	cm.v.SetDefault("defaults.output", defaults.Defaults.Output)
	cm.v.SetDefault("defaults.chunking", defaults.Defaults.Chunking)
	cm.v.SetDefault("defaults.filter_headers", defaults.Defaults.FilterHeaders)
	cm.v.SetDefault("batch.workers", defaults.Batch.Workers)
	cm.v.SetDefault("batch.recursive", defaults.Batch.Recursive)
	cm.v.SetDefault("detection.h3_font_size", defaults.Detection.H3FontSize)
	cm.v.SetDefault("detection.h4_font_size", defaults.Detection.H4FontSize)
	cm.v.SetDefault("detection.require_bold", defaults.Detection.RequireBold)

	// Environment variables with SOFER_ prefix
	cm.v.SetEnvPrefix("SOFER")
	cm.v.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		cm.v.SetConfigFile(cfgFile)
	} else {
		cm.v.SetConfigName("config")
		cm.v.SetConfigType("yaml")
		cm.v.AddConfigPath(".")
		cm.v.AddConfigPath("$HOME/.sofer")
	}

	// Try to read config file (not required)
	if err := cm.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
}

// ToContext builds a handler context seeded from the configured defaults.
// Per-file fields (filename, path) are filled in by the processor.
func (c *Config) ToContext() *format.Context {
	ctx := format.NewContext()
	ctx.Book = c.Defaults.Book
	ctx.Sefer = c.Defaults.Sefer
	ctx.FilterHeaders = c.Defaults.FilterHeaders
	if c.Detection.H3FontSize > 0 {
		ctx.H3FontSize = c.Detection.H3FontSize
	}
	if c.Detection.H4FontSize > 0 {
		ctx.H4FontSize = c.Detection.H4FontSize
	}
	ctx.RequireBold = c.Detection.RequireBold
	return ctx
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Sofer configuration
# Values here are defaults; CLI flags override them per run.
# SOFER_ environment variables also override file values.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
