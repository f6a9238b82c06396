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

// SchemeLen is the number of density levels a color scheme must
// cover, one per possible value of a density cell.
const SchemeLen = 256

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Scheme is a density-to-color lookup table: entry i gives the color
// for density level i, with entry SchemeLen-1 marking the highest
// density. A Scheme is valid if it holds exactly SchemeLen entries;
// Render rejects any other length.
//
// Schemes are plain data. The colorscheme subpackage provides a set
// of named ready-made tables, but any caller-supplied table works.
type Scheme []Color
