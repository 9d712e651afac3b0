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

package epic

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// keyImageTall is the portrait key-image type in the Epic catalog.
const keyImageTall = "DieselGameBoxTall"

// catalogEntry is one raw record from the launcher's catalog cache.
type catalogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Namespace   string `json:"namespace"`
	Categories  []struct {
		Path string `json:"path"`
	} `json:"categories"`
	KeyImages []struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	} `json:"keyImages"`
	ReleaseInfo []struct {
		AppID string `json:"appId"`
	} `json:"releaseInfo"`
}

// isGame filters out addons, engine components and entries without a
// release: only real, released games survive.
func (e *catalogEntry) isGame() bool {
	var game bool
	for _, c := range e.Categories {
		switch c.Path {
		case "addons", "engines":
			return false
		case "games":
			game = true
		}
	}
	return game && len(e.ReleaseInfo) > 0
}

// portraitURL returns the tall box-art URL, empty when absent.
func (e *catalogEntry) portraitURL() string {
	for _, img := range e.KeyImages {
		if img.Type == keyImageTall {
			return img.URL
		}
	}
	return ""
}

// readCatalog decodes catcache.bin: a base64 wrapped JSON array of catalog
// entries.
func readCatalog(fsys afero.Fs, path string) ([]catalogEntry, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog cache %s: %w", path, err)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode catalog cache %s: %w", path, err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(decoded, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog cache %s: %w", path, err)
	}
	return entries, nil
}

// installedCatalogIDs scans the install directory for .egstore metadata and
// collects the catalog item id of every installed game.
func installedCatalogIDs(fsys afero.Fs, installDir string) []string {
	dirs, err := afero.ReadDir(fsys, installDir)
	if err != nil {
		log.Debug().Err(err).Str("path", installDir).Msg("cannot scan install directory")
		return nil
	}

	var ids []string
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		egstore := filepath.Join(installDir, d.Name(), ".egstore")
		files, err := afero.ReadDir(fsys, egstore)
		if err != nil {
			continue
		}
		for _, f := range files {
			if !strings.HasSuffix(f.Name(), ".mancpn") {
				continue
			}
			data, err := afero.ReadFile(fsys, filepath.Join(egstore, f.Name()))
			if err != nil {
				log.Debug().Err(err).Str("dir", egstore).Msg("cannot read manifest")
				continue
			}
			var meta struct {
				CatalogItemID string `json:"CatalogItemId"`
			}
			if err := json.Unmarshal(data, &meta); err != nil {
				log.Debug().Err(err).Str("dir", egstore).Msg("invalid manifest")
				continue
			}
			if meta.CatalogItemID != "" {
				ids = append(ids, meta.CatalogItemID)
			}
			break
		}
	}
	return ids
}
