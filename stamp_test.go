package heatmap

import "testing"

func TestStampSingleCell(t *testing.T) {
	k := makeStamp(1)
	if len(k.weights) != 1 || k.weights[0] != 255 {
		t.Errorf("size-1 stamp = %v, want a single full-weight cell", k.weights)
	}
}

func TestStampSymmetry(t *testing.T) {
	for _, size := range []int{2, 5, 10, 31, 150} {
		k := makeStamp(size)
		for j := range size {
			for i := range size {
				w := k.weights[j*size+i]
				// horizontal, vertical, and diagonal mirrors
				if m := k.weights[j*size+(size-1-i)]; m != w {
					t.Fatalf("size %d: (%d,%d)=%d, x-mirror=%d", size, i, j, w, m)
				}
				if m := k.weights[(size-1-j)*size+i]; m != w {
					t.Fatalf("size %d: (%d,%d)=%d, y-mirror=%d", size, i, j, w, m)
				}
				if m := k.weights[i*size+j]; m != w {
					t.Fatalf("size %d: (%d,%d)=%d, transpose=%d", size, i, j, w, m)
				}
			}
		}
	}
}

func TestStampFalloff(t *testing.T) {
	const size = 10
	k := makeStamp(size)

	// corners are outside the inscribed circle
	for _, idx := range []int{0, size - 1, (size - 1) * size, size*size - 1} {
		if k.weights[idx] != 0 {
			t.Errorf("corner cell %d has weight %d, want 0", idx, k.weights[idx])
		}
	}

	// weights grow monotonically toward the centre along a centre row
	row := k.weights[(size/2)*size : (size/2+1)*size]
	for i := 1; i <= size/2; i++ {
		if row[i] < row[i-1] {
			t.Errorf("row weight decreases toward centre: w[%d]=%d < w[%d]=%d",
				i, row[i], i-1, row[i-1])
		}
	}

	// the centre cells carry the maximum weight
	maxW := uint8(0)
	for _, w := range k.weights {
		maxW = max(maxW, w)
	}
	c := size / 2
	if k.weights[c*size+c] != maxW {
		t.Errorf("centre weight %d is not the maximum %d", k.weights[c*size+c], maxW)
	}
}

func TestStampOddSizeCentre(t *testing.T) {
	k := makeStamp(5)
	if w := k.weights[2*5+2]; w != 255 {
		t.Errorf("odd-size centre weight = %d, want 255", w)
	}
}
