// Package tft holds the pixel surfaces the segment widgets draw on: an in
// memory RGB565 framebuffer, an ILI9341 panel on SPI and a terminal
// simulation.
package tft

import (
	"image"
	"image/color"

	"dscheirer.com/tftclock/sevenseg"
)

// FlushFunc receives the area touched by a batch once the outermost
// EndWrite is reached.
type FlushFunc func(fb *Framebuffer, dirty image.Rectangle) error

// Stats counts what was drawn on a framebuffer
type Stats struct {
	Batches int
	Lines   int
	Rects   int
}

// Framebuffer is a W x H RGB565 surface. Draws are clipped to the screen.
type Framebuffer struct {
	w, h  int
	pix   []sevenseg.Color
	depth int
	dirty image.Rectangle
	flush FlushFunc
	stats Stats
	// flush failure of a lone draw, handed to the next batch end
	pending error
}

// NewFramebuffer makes a black w x h framebuffer; flush may be nil
func NewFramebuffer(w, h int, flush FlushFunc) *Framebuffer {
	return &Framebuffer{
		w:     w,
		h:     h,
		pix:   make([]sevenseg.Color, w*h),
		flush: flush,
	}
}

func (fb *Framebuffer) Size() (w, h int) { return fb.w, fb.h }

func (fb *Framebuffer) StartWrite() {
	fb.depth++
}

func (fb *Framebuffer) EndWrite() error {
	if fb.depth == 0 {
		return nil
	}
	fb.depth--
	if fb.depth > 0 {
		return nil
	}
	fb.stats.Batches++
	dirty := fb.dirty
	fb.dirty = image.Rectangle{}
	pending := fb.pending
	fb.pending = nil
	if fb.flush == nil || dirty.Empty() {
		return pending
	}
	if err := fb.flush(fb, dirty); err != nil {
		return err
	}
	return pending
}

func (fb *Framebuffer) DrawHLine(x, y, w int, c sevenseg.Color) {
	fb.stats.Lines++
	if w <= 0 {
		return
	}
	fb.draw(image.Rect(x, y, x+w, y+1), c)
}

func (fb *Framebuffer) DrawVLine(x, y, h int, c sevenseg.Color) {
	fb.stats.Lines++
	if h <= 0 {
		return
	}
	fb.draw(image.Rect(x, y, x+1, y+h), c)
}

func (fb *Framebuffer) FillRect(x, y, w, h int, c sevenseg.Color) {
	fb.stats.Rects++
	if w <= 0 || h <= 0 {
		return
	}
	fb.draw(image.Rect(x, y, x+w, y+h), c)
}

// draw is its own batch when none is open, so a lone draw still reaches
// the screen. Its flush error comes back from the next EndWrite.
func (fb *Framebuffer) draw(r image.Rectangle, c sevenseg.Color) {
	fb.StartWrite()
	fb.fill(r, c)
	if err := fb.EndWrite(); err != nil {
		fb.pending = err
	}
}

// Clear paints the whole screen c and flushes it
func (fb *Framebuffer) Clear(c sevenseg.Color) error {
	fb.StartWrite()
	fb.fill(fb.Bounds(), c)
	return fb.EndWrite()
}

func (fb *Framebuffer) fill(r image.Rectangle, c sevenseg.Color) {
	r = r.Intersect(fb.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * fb.w
		for x := r.Min.X; x < r.Max.X; x++ {
			fb.pix[row+x] = c
		}
	}
	fb.dirty = fb.dirty.Union(r)
}

// Pixel returns the color at x, y; outside the screen is black
func (fb *Framebuffer) Pixel(x, y int) sevenseg.Color {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return sevenseg.Black
	}
	return fb.pix[y*fb.w+x]
}

// Row is the pixels of r on line y, for transfer to hardware. It aliases
// the framebuffer.
func (fb *Framebuffer) Row(y int, r image.Rectangle) []sevenseg.Color {
	return fb.pix[y*fb.w+r.Min.X : y*fb.w+r.Max.X]
}

func (fb *Framebuffer) Stats() Stats { return fb.stats }

// Count returns how many pixels are c
func (fb *Framebuffer) Count(c sevenseg.Color) int {
	n := 0
	for _, p := range fb.pix {
		if p == c {
			n++
		}
	}
	return n
}

// image.Image, so a screen can be saved with image/png

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.w, fb.h) }

func (fb *Framebuffer) At(x, y int) color.Color {
	r, g, b := fb.Pixel(x, y).RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
