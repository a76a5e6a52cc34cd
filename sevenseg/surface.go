// Package sevenseg draws virtual seven segment digits on a pixel surface.
//
// A Module is one digit position made of seven tapered LED segments (A-G).
// ClockDisplay and DecimalDisplay arrange modules in a row to form a clock
// readout or a zero-suppressed decimal counter.
package sevenseg

// Color is a packed RGB565 value in the surface's native encoding.
type Color uint16

// a few handy colors
const (
	Black    Color = 0x0000
	White    Color = 0xFFFF
	Red      Color = 0xF800
	Green    Color = 0x07E0
	Blue     Color = 0x001F
	DarkGrey Color = 0x2104
)

// RGB565 packs 8 bit channels into a Color
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the color back to 8 bit channels, replicating the high bits
// into the low ones so that white stays 0xFF.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Surface is the drawing target for the segment renderer.
//
// Draws between StartWrite and EndWrite form one batch; EndWrite reports
// any error pushing the batch to the hardware. Lines with a non-positive
// length are never issued by this package.
type Surface interface {
	StartWrite()
	EndWrite() error
	DrawHLine(x, y, w int, c Color)
	DrawVLine(x, y, h int, c Color)
	FillRect(x, y, w, h int, c Color)
}

// batch runs draw inside a StartWrite/EndWrite bracket
func batch(s Surface, draw func()) (err error) {
	s.StartWrite()
	defer func() {
		if e := s.EndWrite(); err == nil {
			err = e
		}
	}()
	draw()
	return nil
}
