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

// Package assets normalizes heterogeneous remote artwork into a single
// canonical representation: downloaded, optionally resized to the canonical
// poster box, transcoded to JPEG and base64 encoded.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	// Decoders for the formats vendor CDNs serve.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/LocalGamesProject/localgames-core/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

const (
	// CanonicalWidth and CanonicalHeight define the poster box every
	// resized image is scaled into.
	CanonicalWidth  = 228
	CanonicalHeight = 336

	jpegQuality     = 90
	downloadTimeout = 10 * time.Second
)

// Normalizer downloads and transcodes game artwork.
type Normalizer struct {
	client *httpclient.Client
}

// NewNormalizer creates a normalizer with a download-bounded HTTP client.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		client: httpclient.NewClientWithTimeout(downloadTimeout),
	}
}

// NewNormalizerWithClient creates a normalizer using the given client.
func NewNormalizerWithClient(client *httpclient.Client) *Normalizer {
	return &Normalizer{client: client}
}

// FromURL downloads artwork and returns its canonical base64 encoding.
// A non-200 response, network error or undecodable payload yields an empty
// string; artwork being unavailable is an expected, non-exceptional
// outcome.
func (n *Normalizer) FromURL(ctx context.Context, url string, resize bool) string {
	if url == "" {
		return ""
	}
	resp := n.client.Get(ctx, url)
	if !resp.OK() {
		log.Debug().Str("url", url).Int("status", resp.StatusCode).
			Msg("artwork download failed")
		return ""
	}
	encoded, err := FromBytes(resp.Body, resize)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("artwork transcode failed")
		return ""
	}
	return encoded
}

// FromBytes transcodes raw image bytes into the canonical representation.
// When resize is true the image is scaled to the canonical poster box,
// otherwise source dimensions are preserved.
func FromBytes(data []byte, resize bool) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if resize {
		dst := image.NewRGBA(image.Rect(0, 0, CanonicalWidth, CanonicalHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
