// LocalGames Core
// Copyright (c) 2026 The LocalGames Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of LocalGames Core.
//
// LocalGames Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LocalGames Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LocalGames Core.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads and stores the user configuration: per-launcher
// paths and credentials. Paths are configuration, not part of the core
// contract; adapters receive them at construction.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName is the directory name used under the OS config root.
	AppName = "localgames"
	// CfgFile is the name of the TOML config file.
	CfgFile = "config.toml"
	// LogFile is the name of the rotating log file.
	LogFile = "core.log"
)

// Values is the full on-disk configuration.
type Values struct {
	Launchers    Launchers `toml:"launchers"`
	DebugLogging bool      `toml:"debug_logging"`
}

// Launchers groups per-vendor settings.
type Launchers struct {
	Steam     Steam     `toml:"steam"`
	Epic      Epic      `toml:"epic"`
	BattleNet BattleNet `toml:"battlenet"`
	Ubisoft   Ubisoft   `toml:"ubisoft"`
}

// Steam holds the store-API adapter settings. APIKey plus SteamID or
// Vanity are required to enable the adapter.
type Steam struct {
	APIKey     string `toml:"api_key"`
	SteamID    string `toml:"steam_id"`
	Vanity     string `toml:"vanity"`
	InstallDir string `toml:"install_dir"`
}

// Epic holds the catalog-cache adapter settings.
type Epic struct {
	CatalogPath string `toml:"catalog_path"`
	InstallDir  string `toml:"install_dir"`
}

// BattleNet holds the product-database adapter settings.
type BattleNet struct {
	DatabasePath string `toml:"database_path"`
	ImagesPath   string `toml:"images_path"`
}

// Ubisoft holds the config-file adapter settings.
type Ubisoft struct {
	ConfigPath string `toml:"config_path"`
	Lang       string `toml:"lang"`
}

// Instance is a loaded configuration, safe for concurrent reads.
type Instance struct {
	path string
	vals Values
	mu   sync.RWMutex
}

// DefaultPath returns the OS-conventional config file location.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(AppName, CfgFile))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// NewInstance creates a config instance backed by path, loading the file
// when it exists. An empty path uses the OS default location.
func NewInstance(path string) (*Instance, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg := &Instance{path: path}
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file. A missing file leaves defaults in place.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", c.path, err)
	}
	if err := toml.Unmarshal(data, &c.vals); err != nil {
		return fmt.Errorf("parse config %s: %w", c.path, err)
	}
	return nil
}

// Save writes the config file, creating its directory when needed.
func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}

// Path returns the backing file location.
func (c *Instance) Path() string {
	return c.path
}

// DebugLogging reports whether debug logging is enabled.
func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

// SetDebugLogging toggles debug logging.
func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// Launchers returns a copy of the per-vendor settings.
func (c *Instance) Launchers() Launchers {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launchers
}

// SetLaunchers replaces the per-vendor settings.
func (c *Instance) SetLaunchers(l Launchers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launchers = l
}
