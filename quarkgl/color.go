package quarkgl

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) Color { return RGB(uint8(v>>16), uint8(v>>8), uint8(v)) }

// FromRGBA converts an image/color value.
func FromRGBA(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

// Shade applies per-channel light intensities (each 0..1, clamped) to c.
func (c Color) Shade(r, g, b Scalar) Color {
	mul := func(ch uint8, s Scalar) uint8 { return uint8(Scalar(ch)*clamp01(s) + 0.5) }
	return Color{R: mul(c.R, r), G: mul(c.G, g), B: mul(c.B, b), A: c.A}
}
