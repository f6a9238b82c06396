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

import "math"

// dotStamp is the precomputed footprint of a single point: a size×size
// kernel of contribution weights, row-major. Weights are radially
// symmetric, maximal at the centre, and fall off linearly to zero at
// radius size/2. A dotStamp is immutable once built and depends only
// on its size, so it can be reused across renders.
type dotStamp struct {
	size    int
	weights []uint8
}

// makeStamp builds the kernel for the given dot diameter. Distances
// are measured from the kernel centre to each cell centre, so kernels
// of even and odd size are both symmetric. Size 1 degenerates to a
// single full-weight cell.
func makeStamp(size int) dotStamp {
	weights := make([]uint8, size*size)
	radius := float64(size) / 2
	for j := range size {
		dy := float64(j) + 0.5 - radius
		for i := range size {
			dx := float64(i) + 0.5 - radius
			d := math.Sqrt(dx*dx + dy*dy)
			if d < radius {
				weights[j*size+i] = uint8(math.Round(maxDensity * (1 - d/radius)))
			}
		}
	}
	return dotStamp{size: size, weights: weights}
}
