package heatmap

import "testing"

// rampScheme returns a synthetic scheme where level v maps to the
// color (v, 0, 255-v), convenient for asserting exact output values.
func rampScheme() Scheme {
	s := make(Scheme, SchemeLen)
	for i := range s {
		s[i] = Color{R: uint8(i), B: uint8(255 - i)}
	}
	return s
}

func TestColorizeTransparentBackground(t *testing.T) {
	density := make([]uint8, 16)
	density[5] = 100
	pix := make([]uint8, len(density)*4)

	colorize(density, rampScheme(), 255, pix)

	for i, v := range density {
		alpha := pix[i*4+3]
		if v == 0 && alpha != 0 {
			t.Errorf("untouched cell %d has alpha %d, want 0", i, alpha)
		}
		if v != 0 && alpha == 0 {
			t.Errorf("covered cell %d has alpha 0", i)
		}
	}
}

func TestColorizeValues(t *testing.T) {
	density := []uint8{0, 1, 100, 255}
	pix := make([]uint8, len(density)*4)

	covered, saturated := colorize(density, rampScheme(), 255, pix)
	if covered != 3 || saturated != 1 {
		t.Errorf("covered, saturated = %d, %d, want 3, 1", covered, saturated)
	}

	want := []uint8{
		0, 0, 0, 0, // level 0: fully transparent
		1, 0, 254, 1,
		100, 0, 155, 100,
		255, 0, 0, 255,
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestColorizeOpacity(t *testing.T) {
	density := []uint8{200}
	scheme := rampScheme()

	alphaFor := func(opacity int) uint8 {
		pix := make([]uint8, 4)
		colorize(density, scheme, opacity, pix)
		return pix[3]
	}

	// alpha = round(v*opacity/255)
	if got := alphaFor(255); got != 200 {
		t.Errorf("full opacity alpha = %d, want 200", got)
	}
	if got := alphaFor(128); got != 100 {
		t.Errorf("half opacity alpha = %d, want 100", got)
	}
	if got := alphaFor(0); got != 0 {
		t.Errorf("zero opacity alpha = %d, want 0", got)
	}

	// lower opacity always gives strictly smaller alpha for v > 0
	if a64, a255 := alphaFor(64), alphaFor(255); a64 >= a255 {
		t.Errorf("alpha at opacity 64 (%d) not below alpha at 255 (%d)", a64, a255)
	}
}
