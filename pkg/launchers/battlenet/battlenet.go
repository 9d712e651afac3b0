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

// Package battlenet implements the product-database launcher adapter.
// Installed games come from the Battle.net agent's product.db, a protobuf
// encoded record file decoded once during Init.
package battlenet

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const defaultDatabasePath = `C:\ProgramData\Battle.net\Agent\product.db`

// Options configures the Battle.net adapter.
type Options struct {
	// Fs overrides the filesystem used for database and install reads.
	Fs afero.Fs

	// DatabasePath points at the agent's product.db.
	DatabasePath string

	// ImagesPath points at an optional JSON file mapping game uids to
	// pre-encoded portrait images. Battle.net has no artwork CDN keyed
	// by uid, so portraits come from a local bundle.
	ImagesPath string
}

// Raw is the vendor payload attached to every Battle.net game.
type Raw struct {
	// Path is the resolved install executable, empty when none was found.
	Path string `json:"path"`
}

// Adapter is the Battle.net launcher adapter.
type Adapter struct {
	fs         afero.Fs
	dbPath     string
	imagesPath string
	products   []Product
}

// New creates a Battle.net adapter.
func New(opts Options) *Adapter {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dbPath := opts.DatabasePath
	if dbPath == "" {
		dbPath = defaultDatabasePath
	}
	return &Adapter{
		fs:         fs,
		dbPath:     dbPath,
		imagesPath: opts.ImagesPath,
	}
}

// Settings implements launchers.Launcher. Battle.net has no store page
// URIs and no install flow through the agent database.
func (*Adapter) Settings() launchers.Settings {
	return launchers.Settings{
		ID:          launchers.IdentityBattleNet,
		SupportedOS: []string{"windows"},
	}
}

// CheckAvailable reports whether the product database exists.
func (a *Adapter) CheckAvailable(_ context.Context) bool {
	ok, err := afero.Exists(a.fs, a.dbPath)
	return err == nil && ok
}

// Init reads and decodes the product database into memory, keeping only
// known game products.
func (a *Adapter) Init(_ context.Context) error {
	data, err := afero.ReadFile(a.fs, a.dbPath)
	if err != nil {
		return fmt.Errorf("read product database %s: %w", a.dbPath, err)
	}
	products, err := ParseProductDB(data)
	if err != nil {
		return fmt.Errorf("decode product database %s: %w", a.dbPath, err)
	}

	a.products = a.products[:0]
	for _, p := range products {
		if isGame(p.UID) {
			a.products = append(a.products, p)
		}
	}
	return nil
}

// ListGames returns every game product from the decoded database. All
// entries are installed by definition; the agent only tracks installs.
func (a *Adapter) ListGames(_ context.Context) ([]*launchers.GameHandle, error) {
	handles := make([]*launchers.GameHandle, 0, len(a.products))
	for _, p := range a.products {
		handles = append(handles, launchers.NewHandle(launchers.Game{
			Key:       p.UID,
			Name:      productName(p.UID),
			Installed: true,
			Launcher:  launchers.IdentityBattleNet,
			Raw:       Raw{Path: a.installExe(p)},
		}, a))
	}
	return handles, nil
}

// ResolveImage reads the portrait from the local image bundle. There is no
// secondary art source, so fallback and icon stay unset.
func (a *Adapter) ResolveImage(_ context.Context, game *launchers.Game, _ bool) launchers.GameImage {
	if a.imagesPath == "" {
		return launchers.GameImage{}
	}
	data, err := afero.ReadFile(a.fs, a.imagesPath)
	if err != nil {
		log.Debug().Err(err).Str("path", a.imagesPath).Msg("no image bundle")
		return launchers.GameImage{}
	}
	var images map[string]string
	if err := json.Unmarshal(data, &images); err != nil {
		log.Warn().Err(err).Str("path", a.imagesPath).Msg("invalid image bundle")
		return launchers.GameImage{}
	}
	return launchers.GameImage{Portrait: images[game.Key]}
}

// LaunchCommand returns the game's resolved install executable.
func (*Adapter) LaunchCommand(game *launchers.Game) string {
	if raw, ok := game.Raw.(Raw); ok {
		return raw.Path
	}
	return ""
}

// ShopCommand implements launchers.Launcher; Battle.net has no shop URIs.
func (*Adapter) ShopCommand(*launchers.Game) string {
	return ""
}

// LauncherCommand implements launchers.Launcher.
func (*Adapter) LauncherCommand() string {
	return ""
}

// installExe scans the product's install path for its executable.
func (a *Adapter) installExe(p Product) string {
	if p.InstallPath == "" {
		return ""
	}
	entries, err := afero.ReadDir(a.fs, p.InstallPath)
	if err != nil {
		log.Debug().Err(err).Str("path", p.InstallPath).Msg("cannot scan install path")
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".exe") {
			return filepath.Join(p.InstallPath, e.Name())
		}
	}
	return ""
}
