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

// colorize resolves the density surface into the RGBA buffer pix,
// which must hold len(density)*4 zeroed bytes. Cells with zero
// density stay fully transparent; every other cell gets the scheme
// color for its level and an alpha of round(v*opacity/255), so
// density and opacity jointly control visibility.
//
// The pass has no inter-cell dependency. It returns the number of
// covered (non-zero) and saturated cells.
func colorize(density []uint8, scheme Scheme, opacity int, pix []uint8) (covered, saturated int) {
	for i, v := range density {
		if v == 0 {
			continue
		}
		covered++
		if v == maxDensity {
			saturated++
		}
		c := scheme[v]
		o := i * 4
		pix[o] = c.R
		pix[o+1] = c.G
		pix[o+2] = c.B
		pix[o+3] = uint8((int(v)*opacity + 127) / 255) // rounded
	}
	return covered, saturated
}
