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

// Package ubisoft implements the config-file launcher adapter. Installed
// games come from Ubisoft Connect's configuration cache, an indented
// key/value text file decoded once during Init.
package ubisoft

import (
	"context"
	"sort"

	"github.com/LocalGamesProject/localgames-core/pkg/assets"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/spf13/afero"
)

const (
	defaultConfigPath = `C:\Program Files (x86)\Ubisoft\Ubisoft Game Launcher\cache\configuration\configurations`
	defaultLang       = "default"

	thumbBase = "https://ubistatic2-a.akamaihd.net/orbit/uplay_launcher_3_0/assets/"
)

// Options configures the Ubisoft adapter.
type Options struct {
	// Fs overrides the filesystem used for configuration reads.
	Fs afero.Fs

	// ConfigPath points at the launcher's configuration cache.
	ConfigPath string

	// Lang selects the localization used for display names, for example
	// "de-DE". Entries without that localization fall back to their
	// default name.
	Lang string
}

// Raw is the vendor payload attached to every Ubisoft game.
type Raw struct {
	Name       string `json:"name"`
	Executable string `json:"executable"`
	ThumbImage string `json:"thumbImage"`
}

// Adapter is the Ubisoft Connect launcher adapter.
type Adapter struct {
	fs         afero.Fs
	normalizer *assets.Normalizer
	configPath string
	lang       string
	entries    map[string]configEntry
}

// New creates a Ubisoft adapter.
func New(opts Options) *Adapter {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = defaultConfigPath
	}
	lang := opts.Lang
	if lang == "" {
		lang = defaultLang
	}
	return &Adapter{
		fs:         fs,
		normalizer: assets.NewNormalizer(),
		configPath: configPath,
		lang:       lang,
	}
}

// Settings implements launchers.Launcher. The configuration cache only
// tracks installed games; there is no shop or install flow.
func (*Adapter) Settings() launchers.Settings {
	return launchers.Settings{
		ID:          launchers.IdentityUbisoft,
		SupportedOS: []string{"windows"},
	}
}

// CheckAvailable reports whether the configuration cache exists.
func (a *Adapter) CheckAvailable(_ context.Context) bool {
	ok, err := afero.Exists(a.fs, a.configPath)
	return err == nil && ok
}

// Init decodes the configuration cache into memory.
func (a *Adapter) Init(_ context.Context) error {
	entries, err := readConfigurations(a.fs, a.configPath)
	if err != nil {
		return err
	}
	a.entries = entries
	return nil
}

// ListGames returns every configured game in install-id order.
func (a *Adapter) ListGames(_ context.Context) ([]*launchers.GameHandle, error) {
	ids := make([]string, 0, len(a.entries))
	for id := range a.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	handles := make([]*launchers.GameHandle, 0, len(ids))
	for _, id := range ids {
		entry := a.entries[id]
		imageURL := ""
		if entry.Root.ThumbImage != "" {
			imageURL = thumbBase + entry.Root.ThumbImage
		}
		handles = append(handles, launchers.NewHandle(launchers.Game{
			Key:       id,
			Name:      entry.name(a.lang),
			Installed: true,
			Launcher:  launchers.IdentityUbisoft,
			ImageURL:  imageURL,
			Raw: Raw{
				Name:       entry.name(a.lang),
				Executable: entry.executablePath(),
				ThumbImage: entry.Root.ThumbImage,
			},
		}, a))
	}
	return handles, nil
}

// ResolveImage normalizes the entry's thumbnail. There is no secondary art
// source, so fallback and icon stay unset.
func (a *Adapter) ResolveImage(ctx context.Context, game *launchers.Game, resize bool) launchers.GameImage {
	if game.ImageURL == "" {
		return launchers.GameImage{}
	}
	return launchers.GameImage{
		Portrait: a.normalizer.FromURL(ctx, game.ImageURL, resize),
	}
}

// LaunchCommand returns the stable public launch URI for the install id.
func (*Adapter) LaunchCommand(game *launchers.Game) string {
	return "uplay://launch/" + game.Key + "/0"
}

// ShopCommand implements launchers.Launcher; the adapter has no shop.
func (*Adapter) ShopCommand(*launchers.Game) string {
	return ""
}

// LauncherCommand implements launchers.Launcher.
func (*Adapter) LauncherCommand() string {
	return "uplay://"
}
