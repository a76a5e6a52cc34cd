package sevenseg

// Segment identifies one LED of a digit.
//
//	 AAA
//	F   B
//	F   B
//	 GGG
//	E   C
//	E   C
//	 DDD
type Segment uint8

// segment positions, the bit for a segment is 1<<segment
const (
	SegA Segment = iota // top
	SegB                // upper right
	SegC                // lower right
	SegD                // bottom
	SegE                // lower left
	SegF                // upper left
	SegG                // middle
	segCount
)

// translate digits to segment bitmasks, bit order GFEDCBA
var digitValues = [10]byte{
	0x3F, // 0
	0x06, // 1
	0x5B, // 2
	0x4F, // 3
	0x66, // 4
	0x6D, // 5
	0x7D, // 6
	0x07, // 7
	0x7F, // 8
	0x6F, // 9
}

var segmentNames = [segCount]string{"A", "B", "C", "D", "E", "F", "G"}

func (s Segment) String() string {
	if s >= segCount {
		return "?"
	}
	return segmentNames[s]
}

// Mask returns the segments lit for digit
func Mask(digit int) (byte, error) {
	if digit < 0 || digit >= len(digitValues) {
		return 0, ErrBadDigit
	}
	return digitValues[digit], nil
}

// skips the spans that collapse when the led width is big for the module
func hline(s Surface, x, y, w int, c Color) {
	if w > 0 {
		s.DrawHLine(x, y, w, c)
	}
}

func vline(s Surface, x, y, h int, c Color) {
	if h > 0 {
		s.DrawVLine(x, y, h, c)
	}
}

// drawSegment renders one tapered segment of the module at g. The strokes
// shrink by one pixel on each end per step inward, which gives the pointed
// LED look.
func drawSegment(s Surface, g Geometry, seg Segment, c Color) error {
	x, y, w, h, led := g.X, g.Y, g.Width, g.Height, g.LedWidth
	return batch(s, func() {
		switch seg {
		case SegA:
			if led < 2 {
				hline(s, x, y, w, c)
				return
			}
			for i := 0; i < led; i++ {
				hline(s, x+i+3, y+i, w-2*i-5, c)
			}
		case SegD:
			if led < 2 {
				hline(s, x, y+h, w, c)
				return
			}
			for i := 0; i < led; i++ {
				hline(s, x+i+3, y+h-i, w-2*i-5, c)
			}
		case SegF:
			for i := 0; i < led; i++ {
				vline(s, x+i, y+i, h/2-2*i, c)
			}
		case SegE:
			for i := 0; i < led; i++ {
				vline(s, x+i, y+h/2+i+1, h/2-2*i, c)
			}
		case SegB:
			for i := 0; i < led; i++ {
				vline(s, x+w-i, y+i, h/2-2*i, c)
			}
		case SegC:
			for i := 0; i < led; i++ {
				vline(s, x+w-i, y+h/2+i+1, h/2-2*i, c)
			}
		case SegG:
			if led < 2 {
				hline(s, x+1, y+h/2, w, c)
				return
			}
			// odd widths get the extra line on both sides of the centre
			half := led/2 + led%2
			for i := 0; i < half; i++ {
				hline(s, x+i+2, y+h/2-i, w-2*i-4, c)
				hline(s, x+i+2, y+h/2+i+1, w-2*i-4, c)
			}
		}
	})
}
