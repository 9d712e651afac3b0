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

package ubisoft

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// configEntry is one game's record from the launcher's configuration
// cache: an indented key/value document per install id.
type configEntry struct {
	Root struct {
		Name       string `yaml:"name"`
		ThumbImage string `yaml:"thumb_image"`
		StartGame  struct {
			Online struct {
				Executables []executable `yaml:"executables"`
			} `yaml:"online"`
		} `yaml:"start_game"`
	} `yaml:"root"`
	// Localizations maps a locale tag to key/value overrides; the "l1"
	// key carries the localized display name.
	Localizations map[string]map[string]string `yaml:"localizations"`
}

type executable struct {
	Path struct {
		Relative string `yaml:"relative"`
	} `yaml:"path"`
}

// name returns the display name for the requested locale, falling back to
// the root name when no localization exists.
func (e *configEntry) name(lang string) string {
	if loc, ok := e.Localizations[lang]; ok {
		if n := loc["l1"]; n != "" {
			return n
		}
	}
	return e.Root.Name
}

// executablePath returns the first declared executable, empty when the
// entry declares none.
func (e *configEntry) executablePath() string {
	execs := e.Root.StartGame.Online.Executables
	if len(execs) == 0 {
		return ""
	}
	return execs[0].Path.Relative
}

// readConfigurations parses the configuration cache: a nested key/value
// mapping from install id to game entry.
func readConfigurations(fsys afero.Fs, path string) (map[string]configEntry, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read configurations %s: %w", path, err)
	}
	var entries map[string]configEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse configurations %s: %w", path, err)
	}
	return entries, nil
}
