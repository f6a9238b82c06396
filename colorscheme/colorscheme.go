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

// Package colorscheme provides named density-to-color lookup tables
// for seehuhn.de/go/heatmap.
//
// Schemes are defined as gradients: a small list of color keypoints
// which is evaluated into a full 256-entry table on first use.
// Callers can either fetch a built-in scheme by name with Get, or
// build their own table from a custom Gradient.
package colorscheme

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/heatmap"
)

// Keypoint anchors a color at a position within a gradient.
type Keypoint struct {
	Col colorful.Color
	Pos float64 // 0 to 1
}

// Gradient defines a color ramp as a list of keypoints, sorted by
// position, covering positions 0 (lowest density) to 1 (highest).
type Gradient []Keypoint

// Table evaluates the gradient into a lookup table with
// heatmap.SchemeLen entries. Colors between keypoints are blended in
// CIE Lab space, which avoids the muddy midpoints of naive RGB
// interpolation.
func (g Gradient) Table() heatmap.Scheme {
	s := make(heatmap.Scheme, heatmap.SchemeLen)
	for i := range s {
		t := float64(i) / float64(len(s)-1)
		r, gn, b := g.at(t).RGB255()
		s[i] = heatmap.Color{R: r, G: gn, B: b}
	}
	return s
}

// at returns the gradient color at position t. Positions outside the
// keypoint range take the color of the nearest end.
func (g Gradient) at(t float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	for i := 0; i < len(g)-1; i++ {
		k0, k1 := g[i], g[i+1]
		if k0.Pos <= t && t <= k1.Pos {
			f := (t - k0.Pos) / (k1.Pos - k0.Pos)
			return k0.Col.BlendLab(k1.Col, f).Clamped()
		}
	}
	if t < g[0].Pos {
		return g[0].Col
	}
	return g[len(g)-1].Col
}

var (
	mu     sync.Mutex
	tables = map[string]heatmap.Scheme{}
)

// Get returns the built-in scheme with the given name, evaluating its
// gradient on first use. The returned table is shared between
// callers and must not be modified.
func Get(name string) (heatmap.Scheme, error) {
	g, ok := gradients[name]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}

	mu.Lock()
	defer mu.Unlock()
	s, ok := tables[name]
	if !ok {
		s = g.Table()
		tables[name] = s
	}
	return s, nil
}

// Names returns the names of all built-in schemes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(gradients))
}
