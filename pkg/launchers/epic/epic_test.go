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
	"context"
	"testing"

	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	fs := afero.NewMemMapFs()
	writeCatalog(t, fs, "/epic/catcache.bin")
	require.NoError(t, afero.WriteFile(fs, "/games/RocketLeague/.egstore/abc.mancpn",
		[]byte(`{"CatalogItemId": "cat-1"}`), 0o644))

	return New(Options{Fs: fs, CatalogPath: "/epic/catcache.bin", InstallDir: "/games"})
}

func TestSettings(t *testing.T) {
	t.Parallel()

	s := New(Options{}).Settings()
	assert.Equal(t, launchers.IdentityEpic, s.ID)
	assert.Equal(t, []string{"windows"}, s.SupportedOS)
	assert.True(t, s.HasShop)
	assert.True(t, s.CanInstall)
}

func TestCheckAvailable(t *testing.T) {
	t.Parallel()

	assert.True(t, newTestAdapter(t).CheckAvailable(context.Background()))

	noCatalog := New(Options{Fs: afero.NewMemMapFs(), CatalogPath: "/epic/catcache.bin", InstallDir: "/games"})
	assert.False(t, noCatalog.CheckAvailable(context.Background()))
}

func TestListGames(t *testing.T) {
	t.Parallel()

	games, err := newTestAdapter(t).ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	rl := games[0]
	assert.Equal(t, "cat-1", rl.Key)
	assert.Equal(t, "Rocket League", rl.Name)
	assert.True(t, rl.Installed)
	assert.Equal(t, launchers.IdentityEpic, rl.Launcher)
	assert.Equal(t, "https://cdn.epic/tall.jpg", rl.ImageURL)
	assert.Equal(t, Raw{
		Title:     "Rocket League",
		ID:        "cat-1",
		Namespace: "sugar",
		AppID:     "Sugar",
	}, rl.Raw)

	fg := games[1]
	assert.Equal(t, "cat-2", fg.Key)
	assert.False(t, fg.Installed)
	assert.Equal(t, "", fg.ImageURL)
}

func TestLaunchCommand(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)
	raw := Raw{Title: "Rocket League", ID: "cat-1", Namespace: "sugar", AppID: "Sugar"}

	t.Run("installed_launches", func(t *testing.T) {
		t.Parallel()

		g := &launchers.Game{Key: "cat-1", Installed: true, Raw: raw}
		assert.Equal(t,
			"com.epicgames.launcher://apps/sugar%3Acat-1%3ASugar?action=launch&silent=true",
			a.LaunchCommand(g))
	})

	t.Run("owned_but_absent_installs", func(t *testing.T) {
		t.Parallel()

		g := &launchers.Game{Key: "cat-1", Raw: raw}
		assert.Equal(t,
			"com.epicgames.launcher://apps/sugar%3Acat-1%3ASugar?action=install&silent=true",
			a.LaunchCommand(g))
	})

	t.Run("wishlisted_has_none", func(t *testing.T) {
		t.Parallel()

		g := &launchers.Game{Key: "cat-1", Wishlisted: true, Raw: raw}
		assert.Equal(t, "", a.LaunchCommand(g))
	})
}

func TestShopCommand(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t)
	g := &launchers.Game{Key: "cat-1", Raw: Raw{Title: "Rocket League"}}

	assert.Equal(t, "com.epicgames.launcher://store/de/p/rocket-league", a.ShopCommand(g))
	assert.Equal(t, "com.epicgames.launcher://", a.LauncherCommand())
}

func TestStoreSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Rocket League", "rocket-league"},
		{"Far Cry 4", "far-cry-4"},
		{"Hades' Gift!", "hades-gift"},
		{"A + B", "a--b"},
		{"  spaced   out  ", "spaced-out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, storeSlug(tt.title), tt.title)
	}
}
