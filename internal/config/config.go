// Package config loads user-overridable settings from .velmconfig.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/novalym/velm-native/internal/digest"
	"github.com/novalym/velm-native/internal/parser"
)

// FileName is the config file looked up in the working directory.
const FileName = ".velmconfig"

// Config holds settings loaded from .velmconfig. Unset fields fall back to
// the defaults returned by the Effective* accessors.
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Query  QueryConfig  `yaml:"query"`
	Digest DigestConfig `yaml:"digest"`
	Log    LogConfig    `yaml:"log"`
}

// ScanConfig configures the directory scanner.
type ScanConfig struct {
	// Workers bounds concurrent directory walks. Default: number of CPUs.
	Workers *int `yaml:"workers"`

	// IncludeHidden scans dot-files and dot-directories. Default: false.
	IncludeHidden *bool `yaml:"include_hidden"`
}

// QueryConfig configures the structural query engine.
type QueryConfig struct {
	// CacheSize is the number of compiled queries retained. Default: 128.
	CacheSize *int `yaml:"cache_size"`
}

// DigestConfig configures content digests.
type DigestConfig struct {
	// Algorithm is "sha256" or "xxh3". Default: sha256.
	Algorithm string `yaml:"algorithm"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string `yaml:"level"`
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{}
}

// Load reads .velmconfig from dir.
// Returns the default config if the file is missing or not valid YAML.
func Load(dir string) *Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("config.invalid", "path", filepath.Join(dir, FileName), "err", err)
		return Default()
	}
	return cfg
}

// EffectiveWorkers returns the configured scan worker count, or the number of
// CPUs if unset or not positive.
func (c *Config) EffectiveWorkers() int {
	if c.Scan.Workers != nil && *c.Scan.Workers > 0 {
		return *c.Scan.Workers
	}
	return runtime.NumCPU()
}

// EffectiveIncludeHidden returns whether hidden entries are scanned.
func (c *Config) EffectiveIncludeHidden() bool {
	if c.Scan.IncludeHidden != nil {
		return *c.Scan.IncludeHidden
	}
	return false
}

// EffectiveCacheSize returns the compiled query cache size.
func (c *Config) EffectiveCacheSize() int {
	if c.Query.CacheSize != nil && *c.Query.CacheSize > 0 {
		return *c.Query.CacheSize
	}
	return parser.DefaultQueryCacheSize
}

// EffectiveAlgorithm returns the digest algorithm, or sha256 if unset.
// Unknown names are returned as-is so digest reports them.
func (c *Config) EffectiveAlgorithm() digest.Algorithm {
	if a := strings.TrimSpace(c.Digest.Algorithm); a != "" {
		return digest.Algorithm(strings.ToLower(a))
	}
	return digest.SHA256
}

// EffectiveLogLevel returns the configured log level, or info if unset or
// unrecognized.
func (c *Config) EffectiveLogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
