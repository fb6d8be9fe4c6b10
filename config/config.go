// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/ChainSafe/gossamer-babe/internal/log"
	"github.com/ChainSafe/gossamer-babe/internal/metrics"
)

// DefaultBasePath is the default directory holding the node data.
const DefaultBasePath = "~/.gossamer-babe"

// Config is the collection of configurations of the node
type Config struct {
	Global   GlobalConfig   `toml:"global,omitempty"`
	Log      LogConfig      `toml:"log,omitempty"`
	BABE     BABEConfig     `toml:"babe,omitempty"`
	Database DatabaseConfig `toml:"database,omitempty"`
	Metrics  MetricsConfig  `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	BasePath string `toml:"basepath,omitempty"`
	LogLvl   string `toml:"log,omitempty" validate:"omitempty,loglevel"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	BlockProducerLvl string `toml:"babe,omitempty" validate:"omitempty,loglevel"`
	DatabaseLvl      string `toml:"database,omitempty" validate:"omitempty,loglevel"`
}

// BABEConfig is to marshal/unmarshal toml babe config vars
type BABEConfig struct {
	Authority bool `toml:"authority"`
	// Key is a dev account name such as //Alice, a 0x prefixed hex seed or a mnemonic.
	Key string `toml:"key,omitempty" validate:"required_if=Authority true"`
	// SlotDuration is in milliseconds. Zero uses the runtime value.
	SlotDuration         uint64 `toml:"slot-duration,omitempty"`
	ThresholdDenominator uint64 `toml:"threshold-denominator,omitempty" validate:"required_with=ThresholdNumerator"`
	ThresholdNumerator   uint64 `toml:"threshold-numerator,omitempty" validate:"ltefield=ThresholdDenominator"`
	// Threshold is the raw primary threshold out of 2^64-1.
	// Zero uses the threshold ratio, or the runtime value if no ratio is set.
	Threshold      uint64 `toml:"threshold,omitempty" validate:"excluded_with=ThresholdDenominator"`
	ForceAuthoring bool   `toml:"force-authoring,omitempty"`
	SealSelfCheck  string `toml:"seal-self-check,omitempty" validate:"omitempty,oneof=error panic disabled off"`
	// Randomness and GenesisHash are 0x prefixed hex strings bound into the
	// VRF transcript. They are empty by default.
	Randomness  string `toml:"randomness,omitempty" validate:"omitempty,hexadecimal"`
	GenesisHash string `toml:"genesis-hash,omitempty" validate:"omitempty,hexadecimal"`
	Epoch       uint64 `toml:"epoch,omitempty"`
}

// DatabaseConfig is to marshal/unmarshal toml database config vars
type DatabaseConfig struct {
	InMemory bool `toml:"in-memory,omitempty"`
}

// MetricsConfig is to marshal/unmarshal toml metrics config vars
type MetricsConfig struct {
	Publish bool   `toml:"publish,omitempty"`
	Address string `toml:"address,omitempty" validate:"required_if=Publish true"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			BasePath: DefaultBasePath,
			LogLvl:   log.Info.String(),
		},
		Log: LogConfig{
			BlockProducerLvl: log.Info.String(),
			DatabaseLvl:      log.Info.String(),
		},
		BABE: BABEConfig{
			SealSelfCheck: "error",
		},
		Metrics: MetricsConfig{
			Address: metrics.DefaultAddress,
		},
	}
}

// Validate checks the configuration values are consistent.
func (c *Config) Validate() error {
	return validateStruct(c)
}

// Validate checks the babe configuration values are consistent.
func (c *BABEConfig) Validate() error {
	return validateStruct(c)
}

// LogLevel returns the log level of the babe package, falling back
// on the global log level.
func (c *Config) LogLevel() (log.Level, error) {
	return c.levelOrGlobal(c.Log.BlockProducerLvl)
}

// DatabaseLogLevel returns the log level of the database package, falling
// back on the global log level.
func (c *Config) DatabaseLogLevel() (log.Level, error) {
	return c.levelOrGlobal(c.Log.DatabaseLvl)
}

// GlobalLogLevel returns the global log level, defaulting to info.
func (c *Config) GlobalLogLevel() (log.Level, error) {
	return c.levelOrGlobal("")
}

func (c *Config) levelOrGlobal(lvl string) (log.Level, error) {
	if lvl == "" {
		lvl = c.Global.LogLvl
	}
	if lvl == "" {
		return log.Info, nil
	}
	return log.ParseLevel(lvl)
}
