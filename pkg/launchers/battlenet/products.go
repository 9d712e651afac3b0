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

package battlenet

// productNames maps known game uids from the agent database to display
// names. The database also tracks non-game products (the agent itself, the
// launcher); anything not in this table is not treated as a game.
var productNames = map[string]string{
	"w3":              "Warcraft III",
	"heroes":          "Heroes of the Storm",
	"s1":              "StarCraft",
	"s2":              "StarCraft II",
	"star":            "StarCraft Anthology",
	"anbs":            "Diablo Immortal",
	"diablo3":         "Diablo III",
	"fenris":          "Diablo IV",
	"wow":             "World of Warcraft",
	"wow_classic":     "World of Warcraft WotLK Classic",
	"wow_classic_era": "World of Warcraft Classic",
	"prometheus":      "Overwatch",
	"hs":              "Hearthstone",
	"hs_beta":         "Hearthstone",
}

// isGame reports whether the uid belongs to a known game product.
func isGame(uid string) bool {
	_, ok := productNames[uid]
	return ok
}

// productName returns the display name for a known game uid, or the uid
// itself when unknown.
func productName(uid string) string {
	if name, ok := productNames[uid]; ok {
		return name
	}
	return uid
}
