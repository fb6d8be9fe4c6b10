// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
)

// LoadFile loads the toml configuration file, on top of the default configuration.
func LoadFile(path string) (cfg *Config, err error) {
	fp, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("finding absolute path of %s: %w", path, err)
	}

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing configuration file: %w", closeErr)
		}
	}()

	cfg = Default()
	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding toml configuration %s: %w", fp, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", fp, err)
	}

	return cfg, nil
}

// Export writes the configuration to a toml file.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}
