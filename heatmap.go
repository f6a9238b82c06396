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

// Package heatmap renders density heatmaps from 2D point sets.
//
// Every input point contributes a soft circular dot to a saturating
// density surface; the accumulated density is then mapped through a
// 256-entry color scheme and an opacity factor into an RGBA raster
// with a transparent background. The output is suitable on its own or
// as an overlay over another image, for example a map tile.
package heatmap

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Renderer converts point sets to heatmap rasters. The caller creates
// one instance and reuses it for multiple renders; internal buffers
// grow as needed but never shrink. The output raster is freshly
// allocated on every call and owned by the caller.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// DotSize is the pixel diameter of a single point's footprint.
	// Must be at least 1.
	DotSize int

	// Opacity scales the alpha channel of the output.
	// Must be in the range 0 to 255.
	Opacity int

	// Scheme maps density values to colors.
	// Must hold exactly SchemeLen entries.
	Scheme Scheme

	// Area fixes the data-space region mapped onto the raster.
	// If nil, the bounding box of the input points is used instead.
	// Corners given in the wrong order are normalised per axis.
	Area *rect.Rect

	width  int
	height int

	// density holds one saturating counter per pixel, row-major.
	// Reused across renders.
	density []uint8

	// stamp is the dot kernel for the current DotSize.
	stamp dotStamp

	bounds    rect.Rect // data-space area used by the last render
	hasBounds bool
}

// New creates a Renderer producing rasters of the given pixel size,
// with the default dot size and opacity and no color scheme. Callers
// must assign Scheme before rendering.
func New(width, height int) *Renderer {
	return &Renderer{
		DotSize: defaultDotSize,
		Opacity: defaultOpacity,
		width:   width,
		height:  height,
	}
}

// Render projects the points onto the raster, stamps one dot per
// point into the density surface, and resolves the surface to an RGBA
// image. Duplicate points are legal and additive; points outside the
// area are silently discarded.
//
// All parameters are validated before any buffer is touched: Render
// either returns a complete raster or an error, never partial output.
// An empty point set is an error unless Area is set explicitly, in
// which case the result is fully transparent.
func (r *Renderer) Render(points []vec.Vec2) (*Raster, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	area, err := r.resolveArea(points)
	if err != nil {
		return nil, err
	}

	if r.stamp.size != r.DotSize {
		r.stamp = makeStamp(r.DotSize)
	}

	// Reset the density surface, keeping the buffer's capacity.
	size := r.width * r.height
	r.density = slices.Grow(r.density[:0], size)[:size]
	clear(r.density)

	m := projection(area, r.width, r.height)

	// Reject projected centres that cannot touch the raster before
	// converting to int: float-to-int conversion is unspecified for
	// values outside the int range. NaN coordinates fail every
	// comparison and are skipped as well.
	pad := float64(r.stamp.size)
	loX, hiX := -pad, float64(r.width)+pad
	loY, hiY := -pad, float64(r.height)+pad

	for _, p := range points {
		fx := m[0]*p.X + m[2]*p.Y + m[4]
		fy := m[1]*p.X + m[3]*p.Y + m[5]
		if !(fx >= loX && fx < hiX && fy >= loY && fy < hiY) {
			continue
		}
		stampDot(r.density, r.width, r.height, int(math.Floor(fx)), int(math.Floor(fy)), &r.stamp)
	}

	out := newRaster(r.width, r.height)
	covered, saturated := colorize(r.density, r.Scheme, r.Opacity, out.pix)

	if covered > 0 && saturated*denseWarnDivisor >= covered {
		Logger().Warn("density surface is overly dense; consider a smaller dot size",
			"saturated", saturated, "covered", covered)
	}

	r.bounds = area
	r.hasBounds = true
	return out, nil
}

// Bounds returns the data-space area used by the most recent
// successful render: the explicit Area if one was set, otherwise the
// bounding box derived from the points. The second return value is
// false if no render has completed yet.
func (r *Renderer) Bounds() (rect.Rect, bool) {
	return r.bounds, r.hasBounds
}

// validate checks all render parameters. No buffer is allocated or
// modified before validation succeeds.
func (r *Renderer) validate() error {
	if r.width <= 0 || r.height <= 0 {
		return fmt.Errorf("%w: raster size %dx%d", ErrInvalidParameter, r.width, r.height)
	}
	if r.DotSize < 1 {
		return fmt.Errorf("%w: dot size %d", ErrInvalidParameter, r.DotSize)
	}
	if r.Opacity < 0 || r.Opacity > 255 {
		return fmt.Errorf("%w: opacity %d", ErrInvalidParameter, r.Opacity)
	}
	if len(r.Scheme) != SchemeLen {
		return fmt.Errorf("%w: %d entries, need %d", ErrInvalidScheme, len(r.Scheme), SchemeLen)
	}
	return nil
}

// resolveArea returns the data-space region to project: the explicit
// Area when set, otherwise the bounding box of the points.
func (r *Renderer) resolveArea(points []vec.Vec2) (rect.Rect, error) {
	if r.Area != nil {
		return normalizeArea(*r.Area), nil
	}
	if len(points) == 0 {
		return rect.Rect{}, ErrNoPoints
	}
	return deriveBounds(points), nil
}

// Default values for renderer parameters.
const (
	// defaultDotSize is the default dot diameter in pixels.
	defaultDotSize = 150

	// defaultOpacity is the default alpha scale factor.
	defaultOpacity = 128
)

const (
	// denseWarnDivisor controls the "overly dense" warning: Render
	// warns when at least 1/denseWarnDivisor of the covered cells have
	// saturated.
	denseWarnDivisor = 2
)
