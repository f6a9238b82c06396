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

// Density accumulation model:
//
// The density surface is a width×height grid of 8-bit counters, one
// per pixel, all starting at zero. Stamping a point adds the dot
// kernel's weights to the counters under its footprint; each add
// clamps at maxDensity and never wraps, no matter how many
// overlapping points hit the same cell. Clamping keeps the density
// domain aligned with the 256 entries of a color scheme, so the
// colorize pass needs no further scaling, and bounds memory to one
// byte per pixel regardless of the size of the point set.

// stampDot adds the kernel centred at pixel (cx, cy) to the density
// grid. Kernel cells outside [0,width)×[0,height) are silently
// skipped.
func stampDot(density []uint8, width, height, cx, cy int, k *dotStamp) {
	half := k.size / 2
	x0 := cx - half
	y0 := cy - half

	// Clip the kernel to the grid once, instead of per cell.
	iMin := max(0, -x0)
	iMax := min(k.size, width-x0)
	jMin := max(0, -y0)
	jMax := min(k.size, height-y0)

	for j := jMin; j < jMax; j++ {
		row := density[(y0+j)*width : (y0+j+1)*width]
		krow := k.weights[j*k.size : (j+1)*k.size]
		for i := iMin; i < iMax; i++ {
			w := krow[i]
			if w == 0 {
				continue
			}
			x := x0 + i
			sum := uint16(row[x]) + uint16(w)
			if sum > maxDensity {
				sum = maxDensity
			}
			row[x] = uint8(sum)
		}
	}
}

// maxDensity is the saturation ceiling of a density cell, and the
// weight of a dot kernel's centre.
const maxDensity = 255
