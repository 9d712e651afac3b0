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

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFailIndependent(t *testing.T) {
	t.Parallel()

	good := newMockLauncher("GOOD")
	missing := newMockLauncher("MISSING")
	missing.available = false
	broken := newMockLauncher("BROKEN")
	broken.initErr = errors.New("corrupt install")

	r := NewRegistry()
	result := r.Register(context.Background(), good, missing, broken)

	require.Len(t, result.Outcomes, 3)
	assert.False(t, result.Success)

	assert.True(t, result.Outcomes[0].Success)
	assert.NoError(t, result.Outcomes[0].Err)

	assert.False(t, result.Outcomes[1].Success)
	assert.False(t, result.Outcomes[1].Validation.LauncherFound)

	assert.False(t, result.Outcomes[2].Success)
	assert.ErrorContains(t, result.Outcomes[2].Err, "corrupt install")
	assert.True(t, result.Outcomes[2].Validation.Full)

	_, ok := r.Get("GOOD")
	assert.True(t, ok)
	_, ok = r.Get("MISSING")
	assert.False(t, ok)
	_, ok = r.Get("BROKEN")
	assert.False(t, ok)

	assert.Equal(t, []Identity{"GOOD"}, r.Identities())
}

func TestRegisterSkipsInitForInvalid(t *testing.T) {
	t.Parallel()

	missing := newMockLauncher("MISSING")
	missing.available = false

	r := NewRegistry()
	r.Register(context.Background(), missing)

	assert.Zero(t, missing.initCalls)
}

func TestRegisterEmpty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	result := r.Register(context.Background())

	assert.True(t, result.Success)
	assert.Empty(t, result.Outcomes)
	assert.Empty(t, r.Identities())
}

func TestRegisterCollisionLastWriterWins(t *testing.T) {
	t.Parallel()

	first := newMockLauncher("DUP")
	second := newMockLauncher("DUP")

	r := NewRegistry()
	r.Register(context.Background(), first)
	result := r.Register(context.Background(), second)

	assert.True(t, result.Success)
	assert.Equal(t, []Identity{"DUP"}, r.Identities())

	got, ok := r.Get("DUP")
	require.True(t, ok)
	assert.Same(t, second, got.(*mockLauncher))
}

func TestListAllGamesConcatsInRegistrationOrder(t *testing.T) {
	t.Parallel()

	a := newMockLauncher("A")
	a.games = []Game{
		{Key: "a1", Launcher: "A"},
		{Key: "a2", Launcher: "A"},
	}
	b := newMockLauncher("B")
	b.games = []Game{{Key: "b1", Launcher: "B"}}

	r := NewRegistry()
	result := r.Register(context.Background(), a, b)
	require.True(t, result.Success)

	for range 2 {
		games, err := r.ListAllGames(context.Background())
		require.NoError(t, err)
		require.Len(t, games, 3)
		assert.Equal(t, "a1", games[0].Key)
		assert.Equal(t, "a2", games[1].Key)
		assert.Equal(t, "b1", games[2].Key)
	}
}

func TestListAllGamesPropagatesError(t *testing.T) {
	t.Parallel()

	a := newMockLauncher("A")
	a.games = []Game{{Key: "a1", Launcher: "A"}}
	b := newMockLauncher("B")
	b.listErr = errors.New("catalog unreadable")

	r := NewRegistry()
	r.Register(context.Background(), a, b)

	games, err := r.ListAllGames(context.Background())
	assert.ErrorContains(t, err, "catalog unreadable")
	assert.Nil(t, games)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	l := newMockLauncher("A")
	l.launchCmd = "launch://a"

	r := NewRegistry()
	r.Register(context.Background(), l)

	h, ok := r.Wrap(Game{Key: "1", Installed: true, Launcher: "A"})
	require.True(t, ok)
	assert.Equal(t, "launch://a", h.DefaultCommand())

	_, ok = r.Wrap(Game{Key: "1", Launcher: "NOPE"})
	assert.False(t, ok)
}

func TestRegistryEndToEnd(t *testing.T) {
	t.Parallel()

	l := newMockLauncher("SHOPPED")
	l.settings.HasShop = true
	l.games = []Game{
		{Key: "10", Name: "Owned", Installed: true, Launcher: "SHOPPED"},
		{Key: "20", Name: "Wanted", Wishlisted: true, Launcher: "SHOPPED"},
	}
	l.launchCmd = "run://10"
	l.shopCmd = "store://20"

	r := NewRegistry()
	result := r.Register(context.Background(), l)
	require.True(t, result.Success)
	assert.Equal(t, []Identity{"SHOPPED"}, r.Identities())

	games, err := r.ListAllGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "run://10", games[0].DefaultCommand())
	assert.Equal(t, "store://20", games[1].DefaultCommand())
}
