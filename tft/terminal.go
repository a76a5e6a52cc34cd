package tft

import (
	"image"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"dscheirer.com/tftclock/sevenseg"
)

// upper half block, fg paints the top pixel and bg the bottom one
const halfBlock = '▀'

type cellWriter interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

type termboxWriter struct{}

func (termboxWriter) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxWriter) Flush() error { return termbox.Flush() }

// Terminal simulates a panel in a 256 color terminal, two pixel rows per
// character cell.
type Terminal struct {
	*Framebuffer
	out    cellWriter
	closer func()
}

// NewTerminal takes over the terminal. Close gives it back.
func NewTerminal(w, h int) (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "tft: termbox init")
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	t := newTerminal(w, h, termboxWriter{})
	t.closer = termbox.Close
	return t, nil
}

func newTerminal(w, h int, out cellWriter) *Terminal {
	t := &Terminal{out: out}
	t.Framebuffer = NewFramebuffer(w, h, t.paint)
	return t
}

func (t *Terminal) paint(fb *Framebuffer, dirty image.Rectangle) error {
	for cy := dirty.Min.Y / 2; cy < (dirty.Max.Y+1)/2; cy++ {
		for x := dirty.Min.X; x < dirty.Max.X; x++ {
			top := fb.Pixel(x, 2*cy)
			bottom := fb.Pixel(x, 2*cy+1)
			t.out.SetCell(x, cy, halfBlock, attribute(top), attribute(bottom))
		}
	}
	return t.out.Flush()
}

func (t *Terminal) Close() {
	if t.closer != nil {
		t.closer()
	}
}

// attribute maps a pixel onto the xterm 6x6x6 color cube
func attribute(c sevenseg.Color) termbox.Attribute {
	r, g, b := c.RGB()
	level := func(v uint8) int {
		return (int(v)*5 + 127) / 255
	}
	idx := 16 + 36*level(r) + 6*level(g) + level(b)
	// termbox numbers the 256 palette from 1, 0 is the default color
	return termbox.Attribute(idx + 1)
}
