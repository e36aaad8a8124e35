// Package config holds the knobs used to assemble the evaluation engine.
//
// Values come from Default, then an optional JSON file (Load), then
// CHESSEVAL_* environment variables (ApplyEnv). Binaries layer command
// line flags on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config controls cache sizes, classifier strictness and log verbosity.
type Config struct {
	// PawnHashMB sizes the pawn structure cache. 0 disables it.
	PawnHashMB int `json:"pawnHashMb"`
	// ResultCacheEntries bounds the classifier result cache. 0 disables it.
	ResultCacheEntries int64 `json:"resultCacheEntries"`
	// StrictKings makes classification fail when the side to move has no king.
	StrictKings bool `json:"strictKings"`
	// Verbosity is the logr V-level that is still printed.
	Verbosity int `json:"verbosity"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		PawnHashMB:         16,
		ResultCacheEntries: 1 << 16,
		StrictKings:        false,
		Verbosity:          0,
	}
}

// Load reads a JSON file over the defaults. ${VAR} references in the
// file are expanded from the environment before parsing.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := os.Expand(string(data), os.Getenv)
	if err := json.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Environment variable names read by ApplyEnv.
const (
	EnvPawnHashMB  = "CHESSEVAL_PAWN_HASH_MB"
	EnvResultCache = "CHESSEVAL_RESULT_CACHE"
	EnvStrictKings = "CHESSEVAL_STRICT_KINGS"
	EnvVerbosity   = "CHESSEVAL_VERBOSITY"
)

// ApplyEnv overrides fields from the environment. Unset variables leave
// the field alone.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup(EnvPawnHashMB); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPawnHashMB, v, ErrInvalid)
		}
		c.PawnHashMB = n
	}
	if v, ok := lookup(EnvResultCache); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvResultCache, v, ErrInvalid)
		}
		c.ResultCacheEntries = n
	}
	if v, ok := lookup(EnvStrictKings); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvStrictKings, v, ErrInvalid)
		}
		c.StrictKings = b
	}
	if v, ok := lookup(EnvVerbosity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvVerbosity, v, ErrInvalid)
		}
		c.Verbosity = n
	}
	return c.Validate()
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Validate rejects negative sizes.
func (c *Config) Validate() error {
	if c.PawnHashMB < 0 {
		return fmt.Errorf("pawnHashMb %d: %w", c.PawnHashMB, ErrInvalid)
	}
	if c.ResultCacheEntries < 0 {
		return fmt.Errorf("resultCacheEntries %d: %w", c.ResultCacheEntries, ErrInvalid)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, ErrInvalid)
	}
	return nil
}
