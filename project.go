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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// deriveBounds scans the points once and returns their bounding box.
// The caller must ensure the slice is non-empty.
func deriveBounds(points []vec.Vec2) rect.Rect {
	b := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// normalizeArea orders the corners so that the lower-left corner
// holds the per-axis minima. Areas given with swapped corners are
// treated as the same region, not as an error.
func normalizeArea(a rect.Rect) rect.Rect {
	if a.LLx > a.URx {
		a.LLx, a.URx = a.URx, a.LLx
	}
	if a.LLy > a.URy {
		a.LLy, a.URy = a.URy, a.LLy
	}
	return a
}

// projection returns the affine matrix mapping data space to pixel
// space: x maps linearly from [LLx, URx] to columns [0, width), and y
// maps from [LLy, URy] to rows [height, 0), so that increasing data y
// moves toward the top of the raster.
//
// A zero-extent axis maps every value to the raster midpoint on that
// axis instead of dividing by zero.
func projection(area rect.Rect, width, height int) matrix.Matrix {
	var m matrix.Matrix
	if dx := area.URx - area.LLx; dx > 0 {
		sx := float64(width) / dx
		m[0] = sx
		m[4] = -area.LLx * sx
	} else {
		m[4] = float64(width) / 2
	}
	if dy := area.URy - area.LLy; dy > 0 {
		sy := -float64(height) / dy
		m[3] = sy
		m[5] = float64(height) - area.LLy*sy
	} else {
		m[5] = float64(height) / 2
	}
	return m
}
