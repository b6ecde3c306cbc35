// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
)

const (
	// DefaultLogLevel is the default global log level.
	DefaultLogLevel = "info"
	// DefaultUnitWeight is the default weight charged per instruction.
	DefaultUnitWeight uint64 = 1_000_000_000
	// DefaultBaseFee is the default flat delivery fee.
	DefaultBaseFee uint64 = 1_000_000
	// DefaultByteFee is the default delivery fee per encoded byte.
	DefaultByteFee uint64 = 1_000
)

// Config is the playground configuration.
type Config struct {
	Global GlobalConfig `toml:"global,omitempty"`
	Host   HostConfig   `toml:"host,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	LogLvl string `toml:"log,omitempty"`
}

// HostConfig holds the cost parameters of the development host.
type HostConfig struct {
	UnitWeight uint64 `toml:"unit-weight"`
	BaseFee    uint64 `toml:"base-fee"`
	ByteFee    uint64 `toml:"byte-fee"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl: DefaultLogLevel,
		},
		Host: HostConfig{
			UnitWeight: DefaultUnitWeight,
			BaseFee:    DefaultBaseFee,
			ByteFee:    DefaultByteFee,
		},
	}
}

// LoadFile loads the toml file at path over the default configuration.
// Values absent from the file keep their default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	if err = toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}
	return cfg, nil
}

// Export writes the configuration given to a toml file at path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err = os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}
