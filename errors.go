// seehuhn.de/go/heatmap - render density heatmaps from 2D point sets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package heatmap

import "errors"

var (
	// ErrInvalidScheme indicates a color scheme with the wrong number
	// of entries.
	ErrInvalidScheme = errors.New("invalid color scheme")

	// ErrNoPoints indicates an empty point set with no explicit area:
	// the bounding box to project is undefined.
	ErrNoPoints = errors.New("empty point set and no explicit area")

	// ErrInvalidParameter indicates a non-positive raster size or dot
	// size, or an opacity outside the 0-255 range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
