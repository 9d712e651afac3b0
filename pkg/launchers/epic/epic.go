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

// Package epic implements the catalog-cache launcher adapter. Owned games
// come from the Epic launcher's local catalog cache; installed state comes
// from .egstore metadata in the install directory.
package epic

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/LocalGamesProject/localgames-core/pkg/assets"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/spf13/afero"
)

const (
	defaultCatalogPath = `C:\ProgramData\Epic\EpicGamesLauncher\Data\Catalog\catcache.bin`
	defaultInstallDir  = `C:\Program Files\Epic Games`
)

// Options configures the Epic adapter.
type Options struct {
	// Fs overrides the filesystem used for catalog and install reads.
	Fs afero.Fs

	// CatalogPath points at the launcher's catalog cache.
	CatalogPath string

	// InstallDir is the directory games are installed under.
	InstallDir string
}

// Raw is the vendor payload attached to every Epic game.
type Raw struct {
	Title     string `json:"title"`
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
	AppID     string `json:"appId"`
}

// Adapter is the Epic Games launcher adapter.
type Adapter struct {
	fs          afero.Fs
	normalizer  *assets.Normalizer
	catalogPath string
	installDir  string
}

// New creates an Epic adapter.
func New(opts Options) *Adapter {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	catalogPath := opts.CatalogPath
	if catalogPath == "" {
		catalogPath = defaultCatalogPath
	}
	installDir := opts.InstallDir
	if installDir == "" {
		installDir = defaultInstallDir
	}
	return &Adapter{
		fs:          fs,
		normalizer:  assets.NewNormalizer(),
		catalogPath: catalogPath,
		installDir:  installDir,
	}
}

// Settings implements launchers.Launcher.
func (*Adapter) Settings() launchers.Settings {
	return launchers.Settings{
		ID:          launchers.IdentityEpic,
		SupportedOS: []string{"windows"},
		HasShop:     true,
		CanInstall:  true,
	}
}

// CheckAvailable reports whether both the catalog cache and the install
// directory exist.
func (a *Adapter) CheckAvailable(_ context.Context) bool {
	ok, err := afero.Exists(a.fs, a.catalogPath)
	if err != nil || !ok {
		return false
	}
	ok, err = afero.DirExists(a.fs, a.installDir)
	return err == nil && ok
}

// Init implements launchers.Launcher. The catalog is re-read on every
// listing so results reflect the cache at call time.
func (*Adapter) Init(_ context.Context) error {
	return nil
}

// ListGames decodes the catalog cache and marks entries installed when
// their catalog id appears in the install directory's .egstore metadata.
func (a *Adapter) ListGames(_ context.Context) ([]*launchers.GameHandle, error) {
	entries, err := readCatalog(a.fs, a.catalogPath)
	if err != nil {
		return nil, err
	}

	installed := make(map[string]bool)
	for _, id := range installedCatalogIDs(a.fs, a.installDir) {
		installed[id] = true
	}

	var handles []*launchers.GameHandle
	for i := range entries {
		e := &entries[i]
		if !e.isGame() {
			continue
		}
		handles = append(handles, launchers.NewHandle(launchers.Game{
			Key:       e.ID,
			Name:      e.Title,
			Installed: installed[e.ID],
			Launcher:  launchers.IdentityEpic,
			ImageURL:  e.portraitURL(),
			Raw: Raw{
				Title:     e.Title,
				ID:        e.ID,
				Namespace: e.Namespace,
				AppID:     e.ReleaseInfo[0].AppID,
			},
		}, a))
	}
	return handles, nil
}

// ResolveImage normalizes the catalog's tall box art. Epic has no
// secondary art source, so fallback and icon stay unset.
func (a *Adapter) ResolveImage(ctx context.Context, game *launchers.Game, resize bool) launchers.GameImage {
	if game.ImageURL == "" {
		return launchers.GameImage{}
	}
	return launchers.GameImage{
		Portrait: a.normalizer.FromURL(ctx, game.ImageURL, resize),
	}
}

// LaunchCommand returns the launcher URI that starts an installed game or
// installs an owned one. Wishlisted games have no launch command.
func (*Adapter) LaunchCommand(game *launchers.Game) string {
	if game.Wishlisted {
		return ""
	}
	raw, ok := game.Raw.(Raw)
	if !ok {
		return ""
	}
	action := "install"
	if game.Installed {
		action = "launch"
	}
	return fmt.Sprintf(
		"com.epicgames.launcher://apps/%s%%3A%s%%3A%s?action=%s&silent=true",
		raw.Namespace, raw.ID, raw.AppID, action,
	)
}

// ShopCommand returns the store page URI built from the slugified title.
func (*Adapter) ShopCommand(game *launchers.Game) string {
	raw, ok := game.Raw.(Raw)
	if !ok {
		return ""
	}
	return "com.epicgames.launcher://store/de/p/" + storeSlug(raw.Title)
}

// LauncherCommand implements launchers.Launcher.
func (*Adapter) LauncherCommand() string {
	return "com.epicgames.launcher://"
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// storeSlug lowercases the title, replaces whitespace with hyphens and
// drops everything else.
func storeSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Join(strings.Fields(slug), "-")
	return slugStrip.ReplaceAllString(slug, "")
}
