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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger

	t.Run("creates_log_directory", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs", "nested")

		require.NoError(t, InitLogging(logDir, nil))

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		// Note: the log file itself is created lazily by lumberjack on the
		// first write, so only the directory is checked here.
	})

	t.Run("writes_to_additional_writers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitLogging(t.TempDir(), []io.Writer{&buf}))

		log.Info().Str("launcher", "STEAM").Msg("listing games")

		assert.Contains(t, buf.String(), "listing games")
		assert.Contains(t, buf.String(), "STEAM")
	})
}
