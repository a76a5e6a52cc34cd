package sevenseg

// Layout tells the display variants apart
type Layout int

const (
	LayoutClock Layout = iota
	LayoutDecimal
)

func (l Layout) String() string {
	switch l {
	case LayoutClock:
		return "clock"
	case LayoutDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// DefaultSecondsScale shrinks the seconds pair of a clock to 3/4 size
const DefaultSecondsScale = 0.75

// Config describes a display. Width and Height are the size of one digit
// module; SecondsScale and ShowHours only apply to clocks.
type Config struct {
	X, Y          int
	Width, Height int
	OnColor       Color
	OffColor      Color
	LedWidth      int
	ShowHours     bool
	SecondsScale  float64
}

// DefaultConfig returns a 16x32 module with 3 pixel segments
func DefaultConfig() Config {
	return Config{
		X:            0,
		Y:            0,
		Width:        16,
		Height:       32,
		OnColor:      255,
		OffColor:     0,
		LedWidth:     3,
		ShowHours:    true,
		SecondsScale: DefaultSecondsScale,
	}
}

// Display is a row of modules forming a readout
type Display interface {
	Kind() Layout
	Modules() []*Module
	Width() int
	Height() int
	ModuleWidth() int
	ModuleHeight() int
	SetOnColor(c Color)
	SetOffColor(c Color)
	SetLedSegmentWidth(w int)
	SetPosition(x, y int)
	SetModuleSize(w, h int)
}

// group holds what the clock and decimal layouts share: the modules they own
// and the base parameters they were laid out from.
type group struct {
	surface Surface
	cfg     Config
	modules []Module
}

func newGroup(s Surface, cfg Config, n int) group {
	g := group{surface: s, cfg: cfg, modules: make([]Module, n)}
	for i := range g.modules {
		g.modules[i] = Module{
			surface: s,
			geom:    Geometry{X: cfg.X, Y: cfg.Y, Width: cfg.Width, Height: cfg.Height, LedWidth: cfg.LedWidth},
			colors:  ColorPair{On: cfg.OnColor, Off: cfg.OffColor},
			on:      true,
		}
	}
	return g
}

func (g *group) ptrs(mods []Module) []*Module {
	ret := make([]*Module, len(mods))
	for i := range mods {
		ret[i] = &mods[i]
	}
	return ret
}

func (g *group) setOnColor(mods []Module, c Color) {
	for i := range mods {
		mods[i].SetOnColor(c)
	}
	g.cfg.OnColor = c
}

func (g *group) setOffColor(mods []Module, c Color) {
	for i := range mods {
		mods[i].SetOffColor(c)
	}
	g.cfg.OffColor = c
}

func (g *group) setLedWidth(mods []Module, w int) {
	for i := range mods {
		mods[i].SetLedWidth(w)
	}
	g.cfg.LedWidth = w
}

// Config returns the parameters the display is currently laid out from
func (g *group) Config() Config { return g.cfg }

// ModuleWidth is the base width of a digit module
func (g *group) ModuleWidth() int { return g.cfg.Width }

// ModuleHeight is the base height of a digit module
func (g *group) ModuleHeight() int { return g.cfg.Height }

// digitPitch is the distance between two neighbouring full size digits
func digitPitch(w int) int {
	return w + w/8 + 3
}
