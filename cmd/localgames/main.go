/*
LocalGames Core
Copyright (c) 2026 The LocalGames Project Contributors.

This file is part of LocalGames Core.

LocalGames Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

LocalGames Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with LocalGames Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LocalGamesProject/localgames-core/pkg/config"
	"github.com/LocalGamesProject/localgames-core/pkg/helpers"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers/battlenet"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers/epic"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers/steam"
	"github.com/LocalGamesProject/localgames-core/pkg/launchers/ubisoft"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String(
		"config",
		"",
		"path to config file",
	)
	jsonOut := flag.Bool(
		"json",
		false,
		"print games as JSON",
	)
	only := flag.String(
		"launcher",
		"",
		"list only this launcher's games",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	cfg, err := config.NewInstance(*configPath)
	if err != nil {
		return err
	}

	logDir := filepath.Join(os.TempDir(), config.AppName)
	if err := helpers.InitLogging(logDir, nil); err != nil {
		return err
	}
	if *debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx := context.Background()
	registry := launchers.NewRegistry()
	result := registry.Register(ctx, adaptersFromConfig(cfg)...)
	for _, o := range result.Outcomes {
		if !o.Success {
			_, _ = fmt.Fprintf(os.Stderr, "launcher %s not available\n", o.ID)
		}
	}

	var games []*launchers.GameHandle
	if *only != "" {
		l, ok := registry.Get(launchers.Identity(*only))
		if !ok {
			return fmt.Errorf("launcher %q is not registered", *only)
		}
		games, err = l.ListGames(ctx)
	} else {
		games, err = registry.ListAllGames(ctx)
	}
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(games)
	}
	printText(games)
	return nil
}

func adaptersFromConfig(cfg *config.Instance) []launchers.Launcher {
	lc := cfg.Launchers()
	return []launchers.Launcher{
		steam.New(steam.Options{
			APIKey:     lc.Steam.APIKey,
			SteamID:    lc.Steam.SteamID,
			Vanity:     lc.Steam.Vanity,
			InstallDir: lc.Steam.InstallDir,
		}),
		epic.New(epic.Options{
			CatalogPath: lc.Epic.CatalogPath,
			InstallDir:  lc.Epic.InstallDir,
		}),
		battlenet.New(battlenet.Options{
			DatabasePath: lc.BattleNet.DatabasePath,
			ImagesPath:   lc.BattleNet.ImagesPath,
		}),
		ubisoft.New(ubisoft.Options{
			ConfigPath: lc.Ubisoft.ConfigPath,
			Lang:       lc.Ubisoft.Lang,
		}),
	}
}

func printJSON(games []*launchers.GameHandle) error {
	out := make([]launchers.Game, 0, len(games))
	for _, g := range games {
		out = append(out, g.Game)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode games: %w", err)
	}
	return nil
}

func printText(games []*launchers.GameHandle) {
	var current launchers.Identity
	for _, g := range games {
		if g.Launcher != current {
			current = g.Launcher
			fmt.Printf("[%s]\n", current)
		}
		marker := " "
		switch {
		case g.Wishlisted:
			marker = "w"
		case g.Installed:
			marker = "i"
		}
		if cmd := g.DefaultCommand(); cmd != "" {
			fmt.Printf("  %s %s (%s) -> %s\n", marker, g.Name, g.Key, cmd)
		} else {
			fmt.Printf("  %s %s (%s)\n", marker, g.Name, g.Key)
		}
	}
}
