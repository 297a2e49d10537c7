package bzr

import "image/color"

const (
	displayShiftA = 5
	displayShiftB = 2
	displayMaskA  = 0x07
	displayMaskB  = 0x07
	displayMaskC  = 0x03
)

var bzrPalette = buildBzrPalette()

// Palette exposes the color palette used for rendering the reaction.
func (r *Reaction) Palette() []color.RGBA {
	return bzrPalette
}

// buildBzrPalette maps each quantized (A, B, C) triple to a color:
// A dims red, B drives green, C drives blue.
func buildBzrPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		a := float32((i>>displayShiftA)&displayMaskA) / 7
		b := float32((i>>displayShiftB)&displayMaskB) / 7
		c := float32(i&displayMaskC) / 3
		palette[i] = color.RGBA{
			R: uint8(a * 160),
			G: uint8(b * 255),
			B: uint8(c * 255),
			A: 255,
		}
	}
	return palette
}
