package sevenseg

// decimal digit positions
const (
	Hundreds = iota
	Tens
	Ones
	decimalDigits
)

// DecimalDisplay shows 0 to 999 with leading zeros blanked
type DecimalDisplay struct {
	group
}

// NewDecimalDisplay lays out three digits on s. ShowHours and SecondsScale
// are ignored.
func NewDecimalDisplay(s Surface, cfg Config) *DecimalDisplay {
	dd := &DecimalDisplay{group: newGroup(s, cfg, decimalDigits)}
	dd.layout()
	return dd
}

func (dd *DecimalDisplay) layout() {
	for i := range dd.modules {
		dd.modules[i].SetPosition(dd.cfg.X+i*digitPitch(dd.cfg.Width), dd.cfg.Y)
		dd.modules[i].SetWidth(dd.cfg.Width)
		dd.modules[i].SetHeight(dd.cfg.Height)
	}
}

func (dd *DecimalDisplay) Kind() Layout { return LayoutDecimal }

func (dd *DecimalDisplay) Modules() []*Module { return dd.ptrs(dd.modules) }

// Module returns the digit at Hundreds, Tens or Ones
func (dd *DecimalDisplay) Module(pos int) *Module { return &dd.modules[pos] }

// Display shows number, which must be in 0..999
func (dd *DecimalDisplay) Display(number int) error {
	if number < 0 || number > 999 {
		return ErrOutOfRange
	}
	return dd.DisplayDigits((number/100)%10, (number/10)%10, number%10)
}

// DisplayDigits draws each place, blanking the leading zeros. The ones digit
// is always lit so zero reads "  0".
func (dd *DecimalDisplay) DisplayDigits(hundreds, tens, ones int) error {
	places := [decimalDigits]struct {
		show  bool
		digit int
	}{
		{hundreds > 0, hundreds},
		{tens > 0 || hundreds > 0, tens},
		{true, ones},
	}
	for i, p := range places {
		m := &dd.modules[i]
		digit := 0
		if p.show {
			m.On()
			digit = p.digit % 10
		} else {
			m.Off()
		}
		if err := m.Display(digit); err != nil {
			return err
		}
	}
	return nil
}

func (dd *DecimalDisplay) SetOnColor(c Color)       { dd.setOnColor(dd.modules, c) }
func (dd *DecimalDisplay) SetOffColor(c Color)      { dd.setOffColor(dd.modules, c) }
func (dd *DecimalDisplay) SetLedSegmentWidth(w int) { dd.setLedWidth(dd.modules, w) }

func (dd *DecimalDisplay) SetPosition(x, y int) {
	dd.cfg.X, dd.cfg.Y = x, y
	dd.layout()
}

func (dd *DecimalDisplay) SetModuleSize(w, h int) {
	dd.cfg.Width, dd.cfg.Height = w, h
	dd.layout()
}

func (dd *DecimalDisplay) Width() int {
	ones := &dd.modules[Ones]
	return ones.X() + ones.Width() - dd.modules[Hundreds].X()
}

func (dd *DecimalDisplay) Height() int { return dd.cfg.Height }
