package utils

import "fmt"

type ColorFloat [4]float32

func (c *ColorFloat) RGBA() (r, g, b, a uint32) {
	const mf = float32(256*256 - 1)
	r = uint32(c[0] * mf)
	g = uint32(c[1] * mf)
	b = uint32(c[2] * mf)
	a = uint32(c[3] * mf)
	return
}

// Hex renders the rgb part as a 6-digit lowercase hex string without the
// leading '#'. Channels are clamped to [0,1] before quantization.
func (c ColorFloat) Hex() string {
	quantize := func(v float32) uint8 {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	return fmt.Sprintf("%02x%02x%02x", quantize(c[0]), quantize(c[1]), quantize(c[2]))
}

func (c ColorFloat) IsWhite() bool {
	return c.Hex() == "ffffff"
}

func (c ColorFloat) IsBlack() bool {
	return c.Hex() == "000000"
}

func NewColorFloatA(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], c[3]}
}

func NewColorFloat(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], 1.0}
}

func White() ColorFloat {
	return ColorFloat{1, 1, 1, 1}
}
