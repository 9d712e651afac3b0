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
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/LocalGamesProject/localgames-core/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
)

// webAPI wraps the Steam Web API and storefront endpoints.
type webAPI struct {
	client    *httpclient.Client
	apiBase   string
	storeBase string
	key       string
}

func newWebAPI(client *httpclient.Client, key string) *webAPI {
	return &webAPI{
		client:    client,
		apiBase:   "https://api.steampowered.com",
		storeBase: "https://store.steampowered.com",
		key:       key,
	}
}

// OwnedGame is the raw payload of one owned game from
// IPlayerService/GetOwnedGames.
type OwnedGame struct {
	Name            string `json:"name"`
	IconHash        string `json:"img_icon_url"`
	AppID           int    `json:"appid"`
	PlaytimeForever int    `json:"playtime_forever"`
	LastPlayed      int64  `json:"rtime_last_played"`
}

type ownedGamesResponse struct {
	Response struct {
		Games     []OwnedGame `json:"games"`
		GameCount int         `json:"game_count"`
	} `json:"response"`
}

func (w *webAPI) ownedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	q := url.Values{}
	q.Set("key", w.key)
	q.Set("steamid", steamID)
	q.Set("include_appinfo", "true")
	q.Set("include_played_free_games", "false")

	var out ownedGamesResponse
	u := w.apiBase + "/IPlayerService/GetOwnedGames/v1?" + q.Encode()
	if err := w.client.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch owned games: %w", err)
	}
	return out.Response.Games, nil
}

type vanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
	} `json:"response"`
}

// resolveVanityURL resolves a vanity URL name to a 64-bit SteamID via
// ISteamUser/ResolveVanityURL.
func (w *webAPI) resolveVanityURL(ctx context.Context, vanity string) (string, error) {
	q := url.Values{}
	q.Set("key", w.key)
	q.Set("vanityurl", vanity)

	var out vanityResponse
	u := w.apiBase + "/ISteamUser/ResolveVanityURL/v0001?" + q.Encode()
	if err := w.client.GetJSON(ctx, u, &out); err != nil {
		return "", fmt.Errorf("resolve vanity url: %w", err)
	}
	if out.Response.Success != 1 || out.Response.SteamID == "" {
		return "", fmt.Errorf("vanity url %q not valid", vanity)
	}
	return out.Response.SteamID, nil
}

// WishlistEntry is the raw payload of one wish-listed game from the
// storefront wishlist endpoint.
type WishlistEntry struct {
	Name        string `json:"name"`
	Capsule     string `json:"capsule"`
	ReleaseDate string `json:"release_string"`
	ReviewScore int    `json:"review_score"`
}

// wishlist returns the account's wishlist keyed by app id. A private or
// unavailable wishlist yields nil without error; the wishlist being
// unreadable should not fail the whole listing.
func (w *webAPI) wishlist(ctx context.Context, steamID string) (map[string]WishlistEntry, error) {
	u := fmt.Sprintf("%s/wishlist/profiles/%s/wishlistdata/?p=0", w.storeBase, steamID)
	resp := w.client.Get(ctx, u)
	if !resp.OK() {
		log.Debug().Int("status", resp.StatusCode).Msg("wishlist unavailable")
		return nil, nil
	}

	// A private profile answers {"success": 2} instead of the app map.
	var probe struct {
		Success int `json:"success"`
	}
	if err := json.Unmarshal(resp.Body, &probe); err == nil && probe.Success == 2 {
		return nil, nil
	}

	var entries map[string]WishlistEntry
	if err := json.Unmarshal(resp.Body, &entries); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return entries, nil
}
