package sevenseg

import "time"

// clock digit positions
const (
	HH1 = iota
	HH2
	MM1
	MM2
	SS1
	SS2
	clockDigits
)

const (
	secondsInMinute = 60
	minutesInHour   = 60
	hoursInDay      = 24
	millisInSecond  = 1000
)

// ClockDisplay shows HH:MM:SS, or MM:SS with the hours hidden. The seconds
// pair is drawn at SecondsScale of the module size.
type ClockDisplay struct {
	group
	separator bool
	// set by SetLedSegmentWidth, the seconds stop scaling their stroke
	uniformLed bool
}

// NewClockDisplay lays out a clock on s
func NewClockDisplay(s Surface, cfg Config) (*ClockDisplay, error) {
	if cfg.SecondsScale <= 0 {
		return nil, ErrBadScale
	}
	cd := &ClockDisplay{group: newGroup(s, cfg, clockDigits)}
	cd.layout()
	return cd, nil
}

func (cd *ClockDisplay) first() int {
	if cd.cfg.ShowHours {
		return HH1
	}
	return MM1
}

// the digits on screen, hidden hours are skipped
func (cd *ClockDisplay) active() []Module {
	return cd.modules[cd.first():]
}

func (cd *ClockDisplay) layout() {
	w, h, ratio := cd.cfg.Width, cd.cfg.Height, cd.cfg.SecondsScale
	groupOffset := 0
	digit := 0
	offsetx := 0
	segmentWidth := cd.cfg.LedWidth
	for i := cd.first(); i < clockDigits; i++ {
		if i < SS2 {
			offsetx = digit*digitPitch(w) + groupOffset
		} else {
			// the last digit packs against its smaller neighbour
			offsetx = int(float64(offsetx) + float64(w+w/8)*ratio + 3)
		}

		if i > MM2 && cd.cfg.LedWidth > 2 && !cd.uniformLed {
			segmentWidth = int(float64(cd.cfg.LedWidth)*ratio + 1)
		}

		m := &cd.modules[i]
		m.geom = Geometry{X: cd.cfg.X + offsetx, Y: cd.cfg.Y, Width: w, Height: h, LedWidth: segmentWidth}
		digit++

		if i%2 != 0 {
			groupOffset += w / 2
		}
	}
	for _, i := range []int{SS1, SS2} {
		cd.modules[i].SetHeight(int(float64(h) * ratio))
		cd.modules[i].SetWidth(int(float64(w) * ratio))
	}
}

func (cd *ClockDisplay) Kind() Layout { return LayoutClock }

// Modules returns the digits on screen, left to right
func (cd *ClockDisplay) Modules() []*Module { return cd.ptrs(cd.active()) }

// Module returns the digit at one of the HH1..SS2 positions
func (cd *ClockDisplay) Module(pos int) *Module { return &cd.modules[pos] }

func (cd *ClockDisplay) ShowHours() bool { return cd.cfg.ShowHours }

// Display draws the time. Tens of hours, and tens of minutes when the hours
// are hidden, are blanked rather than shown as a leading zero.
func (cd *ClockDisplay) Display(hours, minutes, seconds int, separatorOn bool) error {
	mm1 := &cd.modules[MM1]
	tens := 0
	if minutes > 9 || cd.cfg.ShowHours {
		mm1.On()
		tens = (minutes / 10) % 10
	} else {
		mm1.Off()
	}
	if err := mm1.Display(tens); err != nil {
		return err
	}
	if err := cd.modules[MM2].Display(minutes % 10); err != nil {
		return err
	}
	if err := cd.modules[SS1].Display((seconds / 10) % 10); err != nil {
		return err
	}
	if err := cd.modules[SS2].Display(seconds % 10); err != nil {
		return err
	}

	if !cd.cfg.ShowHours {
		cd.separator = false
		return nil
	}

	hh1 := &cd.modules[HH1]
	tens = 0
	if hours > 9 {
		hh1.On()
		tens = (hours / 10) % 10
	} else {
		hh1.Off()
	}
	if err := hh1.Display(tens); err != nil {
		return err
	}
	if err := cd.modules[HH2].Display(hours % 10); err != nil {
		return err
	}
	return cd.drawSeparators(separatorOn)
}

// drawSeparators puts a colon in the gaps after the hours and the minutes
func (cd *ClockDisplay) drawSeparators(on bool) error {
	c := cd.cfg.OffColor
	if on {
		c = cd.cfg.OnColor
	}
	dot := cd.cfg.LedWidth/2 + 1
	mm1 := &cd.modules[MM1]
	shift := mm1.LedWidth() / 4
	cd.separator = on
	return batch(cd.surface, func() {
		for _, gap := range [][2]int{{HH2, MM1}, {MM2, SS1}} {
			left, right := &cd.modules[gap[0]], &cd.modules[gap[1]]
			end := left.X() + left.Width()
			x := end + (right.X()-end)/2 - shift
			cd.surface.FillRect(x, left.Y()+right.Height()/4, dot, dot, c)
			cd.surface.FillRect(x, left.Y()+3*right.Height()/4-mm1.LedWidth()/2, dot, dot, c)
		}
	})
}

// DisplaySeconds shows a count of seconds as HH:MM:SS, wrapping at a day
func (cd *ClockDisplay) DisplaySeconds(timeSeconds int64, separatorOn bool) error {
	return cd.Display(
		int((timeSeconds/(secondsInMinute*minutesInHour))%hoursInDay),
		int((timeSeconds/secondsInMinute)%minutesInHour),
		int(timeSeconds%secondsInMinute),
		separatorOn)
}

// DisplayMillis shows a count of milliseconds, truncated to the second
func (cd *ClockDisplay) DisplayMillis(timeMillis int64, separatorOn bool) error {
	return cd.DisplaySeconds(timeMillis/millisInSecond, separatorOn)
}

func (cd *ClockDisplay) DisplayDuration(d time.Duration, separatorOn bool) error {
	return cd.DisplayMillis(int64(d/time.Millisecond), separatorOn)
}

// DisplayTime shows the wall clock part of t
func (cd *ClockDisplay) DisplayTime(t time.Time, separatorOn bool) error {
	return cd.Display(t.Hour(), t.Minute(), t.Second(), separatorOn)
}

func (cd *ClockDisplay) SetOnColor(c Color)  { cd.setOnColor(cd.active(), c) }
func (cd *ClockDisplay) SetOffColor(c Color) { cd.setOffColor(cd.active(), c) }

// SetLedSegmentWidth gives every digit the same stroke width, the seconds
// included. Later relayouts keep it that way.
func (cd *ClockDisplay) SetLedSegmentWidth(w int) {
	cd.uniformLed = true
	cd.setLedWidth(cd.active(), w)
}

// SetPosition moves the clock and lays it out again
func (cd *ClockDisplay) SetPosition(x, y int) {
	cd.cfg.X, cd.cfg.Y = x, y
	cd.layout()
}

// SetModuleSize changes the base digit size and lays the clock out again
func (cd *ClockDisplay) SetModuleSize(w, h int) {
	cd.cfg.Width, cd.cfg.Height = w, h
	cd.layout()
}

// Width spans from the first digit on screen to the end of the seconds
func (cd *ClockDisplay) Width() int {
	ss2 := &cd.modules[SS2]
	return ss2.X() + ss2.Width() - cd.modules[cd.first()].X()
}

func (cd *ClockDisplay) Height() int {
	if h := cd.modules[SS1].Height(); h > cd.modules[MM1].Height() {
		return h
	}
	return cd.modules[MM1].Height()
}

// ModuleWidth is the width of the minutes digits
func (cd *ClockDisplay) ModuleWidth() int { return cd.modules[MM1].Width() }

// ModuleHeight is the height of the minutes digits
func (cd *ClockDisplay) ModuleHeight() int { return cd.modules[MM1].Height() }
