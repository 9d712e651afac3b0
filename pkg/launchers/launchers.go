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

// Package launchers defines the capability contract shared by every game
// launcher adapter, the game model, and the registry that aggregates
// adapters behind one polymorphic surface.
package launchers

import (
	"context"
	"runtime"
	"slices"
)

// Identity is the stable tag a launcher adapter is registered under.
type Identity string

// Well-known launcher identities.
const (
	IdentitySteam     Identity = "STEAM"
	IdentityEpic      Identity = "EPIC"
	IdentityBattleNet Identity = "BATTLENET"
	IdentityUbisoft   Identity = "UBISOFT"
)

// Settings is the shared construction-time configuration every adapter
// declares. There is no behavior attached; adapters conform to the Launcher
// interface independently.
type Settings struct {
	// ID is the identity the adapter registers under. It must be stable
	// and unique per registered adapter instance.
	ID Identity

	// SupportedOS lists the GOOS values the adapter works on.
	SupportedOS []string

	// HasShop reports whether the vendor exposes a store front-end.
	HasShop bool

	// CanInstall reports whether unowned games can still be launched via
	// an install flow.
	CanInstall bool
}

// ValidationResult is the outcome of the pre-registration check.
type ValidationResult struct {
	// OSMatch is true when the current OS is in the adapter's declared set.
	OSMatch bool
	// LauncherFound is true when the adapter's backing source exists.
	LauncherFound bool
	// Full is OSMatch && LauncherFound.
	Full bool
}

// Launcher is the capability contract implemented by every vendor adapter.
// Callers never branch on the concrete type behind it.
//
// Lifecycle: Validate (cheap, via the package Validate function) must report
// Full before Init is called, and Init must succeed before any other
// operation is used. The Registry enforces this ordering; calling operations
// on an uninitialized adapter is a contract violation with undefined
// results.
type Launcher interface {
	// Settings returns the adapter's construction-time configuration.
	Settings() Settings

	// CheckAvailable performs a cheap existence check for the vendor's
	// backing source: a file or directory exists, or credentials are
	// configured. It must never load vendor data and must not panic;
	// any failure is reported as false.
	CheckAvailable(ctx context.Context) bool

	// Init performs one-time expensive setup, such as decoding a product
	// database into memory. An error here fails registration for this
	// adapter only.
	Init(ctx context.Context) error

	// ListGames produces every discoverable game from this vendor in one
	// pass, already bound into handles. Zero results is not an error.
	ListGames(ctx context.Context) ([]*GameHandle, error)

	// ResolveImage normalizes the game's artwork. Missing artwork yields
	// unset fields, never an error.
	ResolveImage(ctx context.Context, game *Game, resize bool) GameImage

	// LaunchCommand returns the vendor command or URI that starts (or
	// installs) the game. Empty means no command is available, which is
	// not an error.
	LaunchCommand(game *Game) string

	// ShopCommand returns the command that opens the game's store page.
	// Adapters without a shop return empty.
	ShopCommand(game *Game) string

	// LauncherCommand returns the command that opens the launcher
	// application itself, not a specific game.
	LauncherCommand() string
}

// Validate runs the shared validation policy for an adapter: the OS check
// always runs first and the vendor existence check only runs when the OS
// matches, so an unsupported OS yields Full == false regardless of the
// backing source.
func Validate(ctx context.Context, l Launcher) ValidationResult {
	return validateOn(ctx, l, runtime.GOOS)
}

func validateOn(ctx context.Context, l Launcher, goos string) ValidationResult {
	osMatch := slices.Contains(l.Settings().SupportedOS, goos)
	found := false
	if osMatch {
		found = l.CheckAvailable(ctx)
	}
	return ValidationResult{
		OSMatch:       osMatch,
		LauncherFound: found,
		Full:          osMatch && found,
	}
}
