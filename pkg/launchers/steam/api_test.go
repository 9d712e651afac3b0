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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LocalGamesProject/localgames-core/pkg/shared/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebAPI(t *testing.T, handler http.Handler) *webAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := newWebAPI(httpclient.NewClient(), "test-key")
	api.apiBase = srv.URL
	api.storeBase = srv.URL
	return api
}

func TestOwnedGames(t *testing.T) {
	t.Parallel()

	api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/IPlayerService/GetOwnedGames/v1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "76561198000000000", r.URL.Query().Get("steamid"))
		assert.Equal(t, "true", r.URL.Query().Get("include_appinfo"))
		_, _ = w.Write([]byte(`{
			"response": {
				"game_count": 2,
				"games": [
					{"appid": 620, "name": "Portal 2", "img_icon_url": "ab12", "playtime_forever": 90},
					{"appid": 730, "name": "Counter-Strike 2", "img_icon_url": "", "playtime_forever": 0}
				]
			}
		}`))
	}))

	games, err := api.ownedGames(context.Background(), "76561198000000000")
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, OwnedGame{
		Name:            "Portal 2",
		IconHash:        "ab12",
		AppID:           620,
		PlaytimeForever: 90,
	}, games[0])
}

func TestOwnedGamesServerError(t *testing.T) {
	t.Parallel()

	api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := api.ownedGames(context.Background(), "76561198000000000")
	assert.Error(t, err)
}

func TestResolveVanityURL(t *testing.T) {
	t.Parallel()

	t.Run("resolves", func(t *testing.T) {
		t.Parallel()

		api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ISteamUser/ResolveVanityURL/v0001", r.URL.Path)
			assert.Equal(t, "gaben", r.URL.Query().Get("vanityurl"))
			_, _ = w.Write([]byte(`{"response": {"success": 1, "steamid": "76561197960287930"}}`))
		}))

		id, err := api.resolveVanityURL(context.Background(), "gaben")
		require.NoError(t, err)
		assert.Equal(t, "76561197960287930", id)
	})

	t.Run("unknown_name", func(t *testing.T) {
		t.Parallel()

		api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response": {"success": 42, "message": "No match"}}`))
		}))

		_, err := api.resolveVanityURL(context.Background(), "nobody")
		assert.ErrorContains(t, err, "not valid")
	})
}

func TestWishlist(t *testing.T) {
	t.Parallel()

	t.Run("entries", func(t *testing.T) {
		t.Parallel()

		api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/wishlist/profiles/76561198000000000/wishlistdata/", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"440": {"name": "Team Fortress 2", "capsule": "https://cdn/440.jpg", "release_string": "Oct 2007", "review_score": 9},
				"570": {"name": "Dota 2", "capsule": "https://cdn/570.jpg", "release_string": "Jul 2013", "review_score": 8}
			}`))
		}))

		entries, err := api.wishlist(context.Background(), "76561198000000000")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Team Fortress 2", entries["440"].Name)
		assert.Equal(t, 8, entries["570"].ReviewScore)
	})

	t.Run("private_profile", func(t *testing.T) {
		t.Parallel()

		api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": 2}`))
		}))

		entries, err := api.wishlist(context.Background(), "76561198000000000")
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("unavailable", func(t *testing.T) {
		t.Parallel()

		api := newTestWebAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		entries, err := api.wishlist(context.Background(), "76561198000000000")
		require.NoError(t, err)
		assert.Nil(t, entries)
	})
}
