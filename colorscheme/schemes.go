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

package colorscheme

import "github.com/lucasb-eyer/go-colorful"

// The built-in gradients. Position 0 colors the faintest visible
// density, position 1 the saturated maximum.
var gradients = map[string]Gradient{
	// cold blue through green and yellow to hot red
	"classic": {
		{mustHex("#0000ff"), 0.00},
		{mustHex("#00ffff"), 0.25},
		{mustHex("#00ff00"), 0.50},
		{mustHex("#ffff00"), 0.75},
		{mustHex("#ff0000"), 1.00},
	},
	// pale yellow deepening to dark red
	"fire": {
		{mustHex("#ffffb2"), 0.00},
		{mustHex("#fecc5c"), 0.30},
		{mustHex("#fd8d3c"), 0.55},
		{mustHex("#f03b20"), 0.80},
		{mustHex("#bd0026"), 1.00},
	},
	// loud yellow-orange-red alarm ramp
	"omg": {
		{mustHex("#ffff00"), 0.00},
		{mustHex("#ff8000"), 0.50},
		{mustHex("#ff0000"), 1.00},
	},
	// grape jelly into peanut butter
	"pbj": {
		{mustHex("#2a0a3a"), 0.00},
		{mustHex("#7b3294"), 0.50},
		{mustHex("#a6611a"), 1.00},
	},
	// fairway greens with a yellow fringe
	"pgaitch": {
		{mustHex("#f7fcb9"), 0.00},
		{mustHex("#addd8e"), 0.50},
		{mustHex("#31a354"), 1.00},
	},
}

// mustHex parses a #rrggbb literal. Panics on malformed input, which
// can only happen for a typo in the tables above.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
