package render

import "image/color"

// fillBinaryRGBA writes live cells as the on color and dead cells as the
// off color into a packed RGBA buffer.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var onPix, offPix [4]byte
	packColor(&onPix, on)
	packColor(&offPix, off)
	for i, c := range cells {
		pix := &offPix
		if c != 0 {
			pix = &onPix
		}
		copy(buf[i*4:i*4+4], pix[:])
	}
}

// fillPaletteRGBA writes each cell as a palette lookup. Cell values past
// the palette end clamp to its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func packColor(dst *[4]byte, c color.Color) {
	r, g, b, a := c.RGBA()
	dst[0] = uint8(r >> 8)
	dst[1] = uint8(g >> 8)
	dst[2] = uint8(b >> 8)
	dst[3] = uint8(a >> 8)
}
