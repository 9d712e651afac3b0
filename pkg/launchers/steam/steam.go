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

// Package steam implements the store-API launcher adapter. Owned games and
// the wishlist come from the Steam Web API; installed state comes from the
// local libraryfolders.vdf config.
package steam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/LocalGamesProject/localgames-core/pkg/assets"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/LocalGamesProject/localgames-core/pkg/shared/httpclient"
	"github.com/spf13/afero"
)

const (
	cdnBase   = "https://steamcdn-a.akamaihd.net"
	mediaBase = "https://media.steampowered.com"
)

// Options configures the Steam adapter. APIKey plus either SteamID or
// Vanity are required; everything else has platform defaults.
type Options struct {
	// Fs overrides the filesystem used for local library reads.
	Fs afero.Fs

	// InstallDir is the Steam root directory. Empty picks the platform
	// default.
	InstallDir string

	// APIKey is the caller-supplied Steam Web API key.
	APIKey string

	// SteamID is the 64-bit account id. Optional when Vanity is set.
	SteamID string

	// Vanity is the account's vanity URL name, resolved to a SteamID
	// during Init when SteamID is empty.
	Vanity string
}

// Adapter is the Steam launcher adapter.
type Adapter struct {
	fs          afero.Fs
	api         *webAPI
	normalizer  *assets.Normalizer
	installDir  string
	libraryFile string
	steamID     string
	vanity      string

	// Artwork URL bases, overridable in tests.
	cdnBase   string
	mediaBase string
}

// New creates a Steam adapter.
func New(opts Options) *Adapter {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	installDir := opts.InstallDir
	if installDir == "" {
		installDir = defaultInstallDir()
	}
	return &Adapter{
		fs:          fs,
		api:         newWebAPI(httpclient.NewClient(), opts.APIKey),
		normalizer:  assets.NewNormalizer(),
		installDir:  installDir,
		libraryFile: filepath.Join(installDir, "config", "libraryfolders.vdf"),
		steamID:     opts.SteamID,
		vanity:      opts.Vanity,
		cdnBase:     cdnBase,
		mediaBase:   mediaBase,
	}
}

func defaultInstallDir() string {
	switch runtime.GOOS {
	case "windows":
		return `C:\Program Files (x86)\Steam`
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Steam")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".steam", "steam")
	}
}

// Settings implements launchers.Launcher.
func (*Adapter) Settings() launchers.Settings {
	return launchers.Settings{
		ID:          launchers.IdentitySteam,
		SupportedOS: []string{"windows", "linux", "darwin"},
		HasShop:     true,
		CanInstall:  true,
	}
}

// CheckAvailable reports whether the local Steam library exists and
// account credentials are configured. Vanity resolution is network work
// and deferred to Init.
func (a *Adapter) CheckAvailable(_ context.Context) bool {
	if a.steamID == "" && a.vanity == "" {
		return false
	}
	if ok, err := afero.DirExists(a.fs, a.installDir); err != nil || !ok {
		return false
	}
	ok, err := afero.Exists(a.fs, a.libraryFile)
	return err == nil && ok
}

// Init resolves the vanity URL to a SteamID when no explicit id was
// configured.
func (a *Adapter) Init(ctx context.Context) error {
	if a.steamID != "" {
		return nil
	}
	id, err := a.api.resolveVanityURL(ctx, a.vanity)
	if err != nil {
		return fmt.Errorf("resolve steam id: %w", err)
	}
	a.steamID = id
	return nil
}

// ListGames returns the account's owned games followed by its wishlist.
// Installed state is derived from every library folder's apps block.
func (a *Adapter) ListGames(ctx context.Context) ([]*launchers.GameHandle, error) {
	installed := make(map[string]bool)
	for _, id := range installedAppIDs(a.fs, a.libraryFile) {
		installed[id] = true
	}

	owned, err := a.api.ownedGames(ctx, a.steamID)
	if err != nil {
		return nil, err
	}

	handles := make([]*launchers.GameHandle, 0, len(owned))
	for _, og := range owned {
		key := strconv.Itoa(og.AppID)
		handles = append(handles, launchers.NewHandle(launchers.Game{
			Key:       key,
			Name:      og.Name,
			Installed: installed[key],
			Launcher:  launchers.IdentitySteam,
			ImageURL:  a.portraitURL(key),
			Raw:       og,
		}, a))
	}

	wish, err := a.api.wishlist(ctx, a.steamID)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(wish))
	for id := range wish {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	for _, id := range keys {
		entry := wish[id]
		handles = append(handles, launchers.NewHandle(launchers.Game{
			Key:        id,
			Name:       entry.Name,
			Wishlisted: true,
			Launcher:   launchers.IdentitySteam,
			ImageURL:   a.portraitURL(id),
			Raw:        entry,
		}, a))
	}

	return handles, nil
}

// ResolveImage attempts the portrait first and only falls back to the
// landscape header when the portrait fails. Icons exist only for owned
// games and are resolved independently at native size.
func (a *Adapter) ResolveImage(ctx context.Context, game *launchers.Game, resize bool) launchers.GameImage {
	img := launchers.GameImage{
		Portrait: a.normalizer.FromURL(ctx, a.portraitURL(game.Key), resize),
	}
	if img.Portrait == "" {
		img.Fallback = a.normalizer.FromURL(ctx, a.landscapeURL(game.Key), resize)
	}
	if og, ok := game.Raw.(OwnedGame); ok && og.IconHash != "" {
		img.Icon = a.normalizer.FromURL(ctx, a.iconURL(game.Key, og.IconHash), false)
	}
	return img
}

// LaunchCommand implements launchers.Launcher.
func (*Adapter) LaunchCommand(game *launchers.Game) string {
	return "steam://rungameid/" + game.Key
}

// ShopCommand implements launchers.Launcher.
func (*Adapter) ShopCommand(game *launchers.Game) string {
	return "steam://advertise/" + game.Key
}

// LauncherCommand implements launchers.Launcher.
func (*Adapter) LauncherCommand() string {
	return "steam://advertise/"
}

func (a *Adapter) portraitURL(appID string) string {
	return fmt.Sprintf("%s/steam/apps/%s/library_600x900.jpg", a.cdnBase, appID)
}

func (a *Adapter) landscapeURL(appID string) string {
	return fmt.Sprintf("%s/steam/apps/%s/header.jpg", a.cdnBase, appID)
}

func (a *Adapter) iconURL(appID, iconHash string) string {
	return fmt.Sprintf("%s/steamcommunity/public/images/apps/%s/%s.jpg", a.mediaBase, appID, iconHash)
}
