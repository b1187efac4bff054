package utils

import "testing"

var hexTests = []struct {
	in  ColorFloat
	out string
}{
	{ColorFloat{1, 1, 1, 1}, "ffffff"},
	{ColorFloat{0, 0, 0, 1}, "000000"},
	{ColorFloat{1, 0, 0, 1}, "ff0000"},
	{ColorFloat{1, 0.8, 0.6, 1}, "ffcc99"},
	{ColorFloat{0.5, 0.5, 0.5, 1}, "808080"},
	{ColorFloat{-0.5, 1.5, 0.25, 1}, "00ff40"}, // clamped
}

func TestColorFloatHex(t *testing.T) {
	for _, test := range hexTests {
		if got := test.in.Hex(); got != test.out {
			t.Errorf("Hex(%v)=%q; expected %q", test.in, got, test.out)
		}
	}
}

func TestColorFloatWhiteBlack(t *testing.T) {
	if !White().IsWhite() {
		t.Errorf("White() must report white")
	}
	if (ColorFloat{0, 0, 0, 1}).IsWhite() {
		t.Errorf("black reported as white")
	}
	if !(ColorFloat{0, 0, 0, 0.5}).IsBlack() {
		t.Errorf("alpha must not affect IsBlack")
	}
	// quantization boundary: 0.999 still rounds to ff
	if !(ColorFloat{0.999, 0.999, 0.999, 1}).IsWhite() {
		t.Errorf("near-white must quantize to white")
	}
}

func TestNewColorFloat(t *testing.T) {
	c := NewColorFloat([]float32{0.1, 0.2, 0.3})
	if c[3] != 1 {
		t.Errorf("rgb constructor must force alpha 1, got %v", c[3])
	}
	c = NewColorFloatA([]float32{0.1, 0.2, 0.3, 0.4})
	if c[3] != 0.4 {
		t.Errorf("rgba constructor lost alpha: %v", c[3])
	}
}
