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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameHandleDefaultCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		installed  bool
		wishlisted bool
		canInstall bool
		want       string
	}{
		{
			name:       "wishlisted_opens_shop",
			wishlisted: true,
			want:       "shop://game",
		},
		{
			name:       "wishlisted_wins_over_installed",
			wishlisted: true,
			installed:  true,
			canInstall: true,
			want:       "shop://game",
		},
		{
			name:      "installed_launches",
			installed: true,
			want:      "launch://game",
		},
		{
			name:       "installable_launches_even_when_absent",
			canInstall: true,
			want:       "launch://game",
		},
		{
			name: "otherwise_opens_launcher",
			want: "open://launcher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newMockLauncher("TEST")
			l.settings.CanInstall = tt.canInstall
			l.launchCmd = "launch://game"
			l.shopCmd = "shop://game"
			l.launcherCmd = "open://launcher"

			h := NewHandle(Game{
				Key:        "42",
				Installed:  tt.installed,
				Wishlisted: tt.wishlisted,
				Launcher:   "TEST",
			}, l)

			assert.Equal(t, tt.want, h.DefaultCommand())
		})
	}
}

func TestGameHandleDelegation(t *testing.T) {
	t.Parallel()

	l := newMockLauncher("TEST")
	l.launchCmd = "launch://game"
	l.shopCmd = "shop://game"
	l.launcherCmd = "open://launcher"
	l.image = GameImage{Portrait: "aGVsbG8="}

	h := NewHandle(Game{Key: "42", Launcher: "TEST"}, l)

	assert.Same(t, l, h.Adapter().(*mockLauncher))
	assert.Equal(t, "launch://game", h.LaunchCommand())
	assert.Equal(t, "shop://game", h.ShopCommand())
	assert.Equal(t, "open://launcher", h.LauncherCommand())
	assert.Equal(t, "aGVsbG8=", h.Image(context.Background(), true).Portrait)
}
