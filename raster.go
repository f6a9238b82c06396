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
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Raster is the RGBA output of a render: a flat row-major byte
// buffer, 4 bytes per pixel, top row first. Colors are not
// premultiplied by alpha. A Raster implements image.Image.
type Raster struct {
	width  int
	height int
	pix    []uint8
}

func newRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Pix returns the underlying pixel buffer. Its length is
// Width()*Height()*4.
func (r *Raster) Pix() []uint8 { return r.pix }

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return color.NRGBA{}
	}
	i := (y*r.width + x) * 4
	return color.NRGBA{
		R: r.pix[i],
		G: r.pix[i+1],
		B: r.pix[i+2],
		A: r.pix[i+3],
	}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the raster to w in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r)
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
