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

package battlenet

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrEmptyDatabase     = errors.New("the product database appears empty")
	ErrMalformedDatabase = errors.New("the product database does not match the agent schema")
)

// Product is one decoded ProductInstall record from the agent database.
type Product struct {
	UID         string
	Code        string
	InstallPath string
}

// Field numbers of the agent's protobuf Database schema. Only the fields
// needed for listing are decoded; everything else is skipped by wire type.
const (
	dbFieldProductInstall    = 1
	piFieldUID               = 1
	piFieldProductCode       = 2
	piFieldSettings          = 3
	settingsFieldInstallPath = 1
)

// ParseProductDB decodes the Battle.net agent product.db file. The buffer
// must be a full Database message; any wire-level mismatch fails loudly
// rather than returning partial data.
func ParseProductDB(data []byte) ([]Product, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDatabase
	}

	var products []Product
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, malformed(protowire.ParseError(n))
		}
		b = b[n:]

		if num == dbFieldProductInstall && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			p, err := parseProductInstall(v)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, malformed(protowire.ParseError(n))
		}
		b = b[n:]
	}
	return products, nil
}

func parseProductInstall(data []byte) (Product, error) {
	var p Product
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, malformed(protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return p, malformed(protowire.ParseError(n))
			}
			switch num {
			case piFieldUID:
				p.UID = string(v)
			case piFieldProductCode:
				p.Code = string(v)
			case piFieldSettings:
				path, err := parseInstallPath(v)
				if err != nil {
					return p, err
				}
				p.InstallPath = path
			}
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return p, malformed(protowire.ParseError(n))
		}
		b = b[n:]
	}
	return p, nil
}

func parseInstallPath(data []byte) (string, error) {
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", malformed(protowire.ParseError(n))
		}
		b = b[n:]

		if num == settingsFieldInstallPath && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return "", malformed(protowire.ParseError(n))
			}
			return string(v), nil
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return "", malformed(protowire.ParseError(n))
		}
		b = b[n:]
	}
	return "", nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedDatabase, err)
}
