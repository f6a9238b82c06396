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
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// KML ground overlay descriptor, as used by Google Earth. When the
// input x/y coordinates are longitude/latitude, the overlay positions
// the raster on the map: west/east from the x extent, south/north
// from the y extent.

type kmlFile struct {
	XMLName xml.Name  `xml:"kml"`
	XMLNS   string    `xml:"xmlns,attr"`
	Folder  kmlFolder `xml:"Folder"`
}

type kmlFolder struct {
	Overlay kmlGroundOverlay `xml:"GroundOverlay"`
}

type kmlGroundOverlay struct {
	Icon kmlIcon      `xml:"Icon"`
	Box  kmlLatLonBox `xml:"LatLonBox"`
}

type kmlIcon struct {
	Href string `xml:"href"`
}

type kmlLatLonBox struct {
	North    string `xml:"north"`
	South    string `xml:"south"`
	East     string `xml:"east"`
	West     string `xml:"west"`
	Rotation string `xml:"rotation"`
}

// WriteKML writes a KML GroundOverlay to w, referencing the raster
// image at href and placing it over the given data-space bounds.
// Use Renderer.Bounds to obtain the bounds of the last render.
func WriteKML(w io.Writer, href string, bounds rect.Rect) error {
	doc := kmlFile{
		XMLNS: "http://www.opengis.net/kml/2.2",
		Folder: kmlFolder{
			Overlay: kmlGroundOverlay{
				Icon: kmlIcon{Href: href},
				Box: kmlLatLonBox{
					North:    kmlCoord(bounds.URy),
					South:    kmlCoord(bounds.LLy),
					East:     kmlCoord(bounds.URx),
					West:     kmlCoord(bounds.LLx),
					Rotation: "0",
				},
			},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// SaveKML writes the raster as a PNG next to the KML file, and a KML
// GroundOverlay referencing it. The PNG path is the KML path with its
// extension replaced by ".png".
func SaveKML(kmlPath string, img *Raster, bounds rect.Rect) error {
	pngPath := strings.TrimSuffix(kmlPath, filepath.Ext(kmlPath)) + ".png"
	if err := img.SavePNG(pngPath); err != nil {
		return err
	}

	f, err := os.Create(kmlPath)
	if err != nil {
		return err
	}
	if err := WriteKML(f, filepath.Base(pngPath), bounds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// kmlCoord formats a coordinate with the full precision of a float64.
func kmlCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 16, 64)
}
