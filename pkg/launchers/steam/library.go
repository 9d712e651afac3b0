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

package steam

import (
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// installedAppIDs collects the app ids present in every library folder's
// apps block of libraryfolders.vdf. A missing or unparsable file yields an
// empty set; installed state then simply reports false everywhere.
func installedAppIDs(fsys afero.Fs, libraryFile string) []string {
	f, err := fsys.Open(libraryFile)
	if err != nil {
		log.Debug().Err(err).Str("path", libraryFile).Msg("error opening libraryfolders.vdf")
		return nil
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Error().Err(err).Msg("error parsing libraryfolders.vdf")
		return nil
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Error().Msg("libraryfolders is not a map")
		return nil
	}

	var out []string
	for id, v := range lfs {
		folder, ok := v.(map[string]any)
		if !ok {
			log.Error().Msgf("library %s is not a map", id)
			continue
		}
		apps, ok := folder["apps"].(map[string]any)
		if !ok {
			continue
		}
		for appID := range apps {
			out = append(out, appID)
		}
	}
	return out
}

// normalizeVDFKeys recursively lowercases all keys in a map[string]any
// tree. Valve's VDF format is case-insensitive, but Go maps use exact
// string matching.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}
