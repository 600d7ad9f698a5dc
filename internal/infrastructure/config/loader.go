package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the base config file name inside the config filesystem
const ConfigFile = "pong.json"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load loads and validates pong.json
func (l *Loader) Load() (*Config, error) {
	data, err := fs.ReadFile(l.fsys, ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFile, err)
	}

	return &cfg, nil
}

// LoadWithOverrides loads pong.json, then applies the TOML file at
// overridePath on top of it. An empty overridePath skips the override.
func (l *Loader) LoadWithOverrides(overridePath string) (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read override %s: %w", overridePath, err)
	}
	if err := ApplyOverrides(cfg, string(data)); err != nil {
		return nil, fmt.Errorf("override %s: %w", overridePath, err)
	}
	return cfg, nil
}

// ApplyOverrides decodes TOML onto cfg. Keys absent from the document keep
// their current values; unknown keys are rejected.
func ApplyOverrides(cfg *Config, doc string) error {
	md, err := toml.Decode(doc, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse toml: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return cfg.Validate()
}
