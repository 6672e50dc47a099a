package render

import "image/color"

// fillRectRGBA paints an opaque-or-not rectangle into an RGBA buffer with the
// given stride, replacing existing pixels. Coordinates must already be clipped.
func fillRectRGBA(buf []byte, stride, x0, y0, x1, y1 int, c color.Color) {
	r, g, b, a := c.RGBA()
	pr, pg, pb, pa := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	for y := y0; y < y1; y++ {
		base := y*stride + x0*4
		for x := x0; x < x1; x++ {
			buf[base+0] = pr
			buf[base+1] = pg
			buf[base+2] = pb
			buf[base+3] = pa
			base += 4
		}
	}
}

// blendPixelRGBA composites c over the premultiplied pixel at offset i.
func blendPixelRGBA(buf []byte, i int, c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	if a == 0xffff {
		buf[i+0] = uint8(r >> 8)
		buf[i+1] = uint8(g >> 8)
		buf[i+2] = uint8(b >> 8)
		buf[i+3] = 0xff
		return
	}
	inv := 0xffff - a
	buf[i+0] = uint8((r + uint32(buf[i+0])*0x101*inv/0xffff) >> 8)
	buf[i+1] = uint8((g + uint32(buf[i+1])*0x101*inv/0xffff) >> 8)
	buf[i+2] = uint8((b + uint32(buf[i+2])*0x101*inv/0xffff) >> 8)
	buf[i+3] = uint8((a + uint32(buf[i+3])*0x101*inv/0xffff) >> 8)
}
