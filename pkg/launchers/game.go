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

package launchers

import "context"

// Game is one discovered game from a single vendor. Key is unique within
// one launcher's result set but not globally; global identity is
// (Launcher, Key).
type Game struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Installed  bool     `json:"installed"`
	Wishlisted bool     `json:"wishlisted"`
	Launcher   Identity `json:"launcher"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Raw        any      `json:"raw,omitempty"`
}

// GameImage is the canonical artwork for a game. Each field is a base64
// encoded canonical image; empty means unset. At most one of
// Portrait/Fallback is meaningful per adapter contract: Fallback is only
// attempted after Portrait fails, and adapters without secondary art leave
// it unset. Icon is resolved independently where offered.
type GameImage struct {
	Portrait string `json:"portrait,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// GameHandle binds a Game to the adapter that produced it. The reference is
// a lookup relation, not ownership: the adapter's lifetime is governed by
// the Registry. Handles are created fresh on every listing call and never
// mutated after construction.
type GameHandle struct {
	Game
	launcher Launcher
}

// NewHandle pairs a game with its owning adapter.
func NewHandle(g Game, l Launcher) *GameHandle {
	return &GameHandle{Game: g, launcher: l}
}

// Adapter returns the launcher adapter that produced this game.
func (h *GameHandle) Adapter() Launcher {
	return h.launcher
}

// Image resolves the game's artwork through the owning adapter.
func (h *GameHandle) Image(ctx context.Context, resize bool) GameImage {
	return h.launcher.ResolveImage(ctx, &h.Game, resize)
}

// LaunchCommand returns the command that starts or installs the game.
func (h *GameHandle) LaunchCommand() string {
	return h.launcher.LaunchCommand(&h.Game)
}

// ShopCommand returns the command that opens the game's store page.
func (h *GameHandle) ShopCommand() string {
	return h.launcher.ShopCommand(&h.Game)
}

// LauncherCommand returns the command that opens the owning launcher.
func (h *GameHandle) LauncherCommand() string {
	return h.launcher.LauncherCommand()
}

// DefaultCommand picks the most specific actionable command, evaluated in
// strict order with short-circuiting:
//
//  1. Wishlisted games return the shop command, even when that is unset; a
//     wish-listed game has no launch command by definition.
//  2. Installed games, or any game on an adapter that can install, return
//     the launch command.
//  3. Everything else falls back to opening the launcher itself.
func (h *GameHandle) DefaultCommand() string {
	switch {
	case h.Wishlisted:
		return h.launcher.ShopCommand(&h.Game)
	case h.Installed || h.launcher.Settings().CanInstall:
		return h.launcher.LaunchCommand(&h.Game)
	default:
		return h.launcher.LauncherCommand()
	}
}
