package sevenseg

import "errors"

// Errors
var (
	ErrBadDigit    = errors.New("sevenseg: digit out of range 0-9")
	ErrBadGeometry = errors.New("sevenseg: bad module geometry")
	ErrBadScale    = errors.New("sevenseg: seconds scale must be positive")
	ErrOutOfRange  = errors.New("sevenseg: number out of range 0-999")
)

// Geometry is the bounding box of a module and the stroke width of its
// segments, all in pixels.
type Geometry struct {
	X, Y          int
	Width, Height int
	LedWidth      int
}

func (g Geometry) valid() bool {
	return g.LedWidth >= 0 && g.Width > 0 && g.Height > 0
}

// ColorPair holds the lit and unlit segment colors
type ColorPair struct {
	On  Color
	Off Color
}

// Module is a single seven segment digit. Setters only change the state used
// by the next Display call.
type Module struct {
	surface Surface
	geom    Geometry
	colors  ColorPair
	on      bool
	mask    byte
}

// NewModule creates a module drawing on s
func NewModule(s Surface, g Geometry, colors ColorPair, on bool) *Module {
	return &Module{surface: s, geom: g, colors: colors, on: on}
}

// Display draws all seven segments for digit, unlit ones in the off color so
// anything left from the previous digit is erased.
func (m *Module) Display(digit int) error {
	leds, err := Mask(digit)
	if err != nil {
		return err
	}
	if !m.geom.valid() {
		return ErrBadGeometry
	}
	if !m.on {
		leds = 0
	}
	for seg := SegA; seg < segCount; seg++ {
		c := m.colors.Off
		if leds&(1<<seg) != 0 {
			c = m.colors.On
		}
		if err := drawSegment(m.surface, m.geom, seg, c); err != nil {
			return err
		}
	}
	m.mask = leds
	return nil
}

// On lets the next Display light segments
func (m *Module) On() { m.on = true }

// Off makes the next Display draw every segment in the off color
func (m *Module) Off() { m.on = false }

// SetEnabled is On or Off by flag
func (m *Module) SetEnabled(on bool) { m.on = on }

// Enabled reports whether the module lights segments
func (m *Module) Enabled() bool { return m.on }

// SetOnColor changes the lit color for the next Display
func (m *Module) SetOnColor(c Color) { m.colors.On = c }

// SetOffColor changes the unlit color for the next Display
func (m *Module) SetOffColor(c Color) { m.colors.Off = c }

// Colors returns the lit and unlit colors
func (m *Module) Colors() ColorPair { return m.colors }

// SetLedWidth sets the stroke width. None of the geometry setters redraw,
// the next Display uses the new values.
func (m *Module) SetLedWidth(w int) { m.geom.LedWidth = w }

// SetWidth sets the digit width
func (m *Module) SetWidth(w int) { m.geom.Width = w }

// SetHeight sets the digit height
func (m *Module) SetHeight(h int) { m.geom.Height = h }

// SetSurface points the module at another surface
func (m *Module) SetSurface(s Surface) { m.surface = s }

// SetPosition moves the top left corner of the digit
func (m *Module) SetPosition(x, y int) {
	m.geom.X = x
	m.geom.Y = y
}

// X is the left edge
func (m *Module) X() int { return m.geom.X }

// Y is the top edge
func (m *Module) Y() int { return m.geom.Y }

// Width is the digit width
func (m *Module) Width() int { return m.geom.Width }

// Height is the digit height
func (m *Module) Height() int { return m.geom.Height }

// LedWidth is the stroke width
func (m *Module) LedWidth() int { return m.geom.LedWidth }

// Geometry returns position, size and stroke together
func (m *Module) Geometry() Geometry { return m.geom }

// Mask is the set of segments lit by the last Display
func (m *Module) Mask() byte { return m.mask }
