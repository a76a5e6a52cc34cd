package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"dscheirer.com/tftclock/sevenseg"
)

type colorScheme struct {
	on  sevenseg.Color
	off sevenseg.Color
}

// face is one of the screen layouts, drawn once per display loop
type face interface {
	// draw renders the state at now and returns what the digits read
	draw(now time.Time) (string, error)
	displays() []sevenseg.Display
	setColors(c colorScheme)
}

func applyColors(ds []sevenseg.Display, c colorScheme) {
	for _, d := range ds {
		d.SetOnColor(c.on)
		d.SetOffColor(c.off)
	}
}

func clockReading(showHours bool, d time.Duration, sep bool) string {
	s := int64(d / time.Second)
	colon := ' '
	if sep {
		colon = ':'
	}
	if showHours {
		return fmt.Sprintf("%2d%c%02d%c%02d", (s/3600)%24, colon, (s/60)%60, colon, s%60)
	}
	return fmt.Sprintf("%2d %02d", (s/60)%60, s%60)
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// wall clock
type clockFace struct {
	cd    *sevenseg.ClockDisplay
	blink bool
}

func newClockFace(s sevenseg.Surface, settings configSettings) (*clockFace, error) {
	cd, err := sevenseg.NewClockDisplay(s, settings.digitConfig())
	if err != nil {
		return nil, errors.Wrap(err, "clock layout")
	}
	return &clockFace{cd: cd, blink: settings.GetBool(sBlink)}, nil
}

func (f *clockFace) draw(now time.Time) (string, error) {
	sep := !f.blink || now.Second()%2 == 1
	if err := f.cd.DisplayTime(now, sep); err != nil {
		return "", err
	}
	return clockReading(f.cd.ShowHours(), sinceMidnight(now), sep), nil
}

func (f *clockFace) displays() []sevenseg.Display {
	return []sevenseg.Display{f.cd}
}

func (f *clockFace) setColors(c colorScheme) { applyColors(f.displays(), c) }

// two player clocks stacked over a move counter
type chessFace struct {
	surface    sevenseg.Surface
	cfg        sevenseg.Config
	background sevenseg.Color
	game       *chessGame
	clocks     [2]*sevenseg.ClockDisplay
	moves      *sevenseg.DecimalDisplay
}

func newChessFace(s sevenseg.Surface, settings configSettings, rules gameRules) (*chessFace, error) {
	f := &chessFace{surface: s, cfg: settings.digitConfig(), background: settings.GetColor(sBackground)}
	if err := f.newGame(rules); err != nil {
		return nil, err
	}
	return f, nil
}

// newGame lays the clocks out again, hours digits only show up for games
// of an hour or more
func (f *chessFace) newGame(rules gameRules) error {
	if err := f.layout(rules.Base >= time.Hour); err != nil {
		return err
	}
	f.game = newChessGame(rules)
	return nil
}

// layout stacks the two clocks over the move counter
func (f *chessFace) layout(showHours bool) error {
	cfg := f.cfg
	cfg.ShowHours = showHours
	gap := cfg.Height / 4
	var clocks [2]*sevenseg.ClockDisplay
	for p := white; p <= black; p++ {
		cd, err := sevenseg.NewClockDisplay(f.surface, cfg)
		if err != nil {
			return errors.Wrapf(err, "%s clock layout", p)
		}
		clocks[p] = cd
		cfg.Y += cd.Height() + gap
	}
	f.clocks = clocks
	f.moves = sevenseg.NewDecimalDisplay(f.surface, cfg)
	return nil
}

// addHours blanks the minutes-only clocks and lays them out again with
// hours digits
func (f *chessFace) addHours() (err error) {
	f.surface.StartWrite()
	defer func() {
		if ferr := f.surface.EndWrite(); err == nil {
			err = ferr
		}
	}()
	for _, cd := range f.clocks {
		cfg := cd.Config()
		f.surface.FillRect(cfg.X, cfg.Y, cd.Width(), cd.Height(), f.background)
	}
	return f.layout(true)
}

// shownTime counts up to the next whole second so 0:00 means out of time
func shownTime(left time.Duration) time.Duration {
	return (left + time.Second - 1) / time.Second * time.Second
}

func (f *chessFace) draw(now time.Time) (string, error) {
	g := f.game
	g.tick(now)

	// increments can carry a player past the hour
	if !f.clocks[white].ShowHours() &&
		(shownTime(g.remainingFor(white)) >= time.Hour || shownTime(g.remainingFor(black)) >= time.Hour) {
		if err := f.addHours(); err != nil {
			return "", err
		}
	}

	readings := [2]string{}
	for p := white; p <= black; p++ {
		cd := f.clocks[p]
		shown := shownTime(g.remainingFor(p))
		if err := cd.DisplayDuration(shown, true); err != nil {
			return "", err
		}
		mark := " "
		if g.turn == p && g.state != gameReady {
			mark = ">"
		}
		readings[p] = mark + clockReading(cd.ShowHours(), shown, true)
	}

	n := g.moveNumber()
	if n > 999 {
		n = 999
	}
	if err := f.moves.Display(n); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %3d %s", readings[white], readings[black], n, g.state), nil
}

func (f *chessFace) displays() []sevenseg.Display {
	return []sevenseg.Display{f.clocks[white], f.clocks[black], f.moves}
}

// the colors outlive the layout, newGame builds from cfg
func (f *chessFace) setColors(c colorScheme) {
	f.cfg.OnColor, f.cfg.OffColor = c.on, c.off
	applyColors(f.displays(), c)
}

// a number set from outside
type counterFace struct {
	dd    *sevenseg.DecimalDisplay
	value int
}

func newCounterFace(s sevenseg.Surface, settings configSettings) *counterFace {
	return &counterFace{dd: sevenseg.NewDecimalDisplay(s, settings.digitConfig())}
}

func (f *counterFace) set(n int) error {
	if n < 0 || n > 999 {
		return sevenseg.ErrOutOfRange
	}
	f.value = n
	return nil
}

func (f *counterFace) draw(now time.Time) (string, error) {
	if err := f.dd.Display(f.value); err != nil {
		return "", err
	}
	return fmt.Sprintf("%3d", f.value), nil
}

func (f *counterFace) displays() []sevenseg.Display {
	return []sevenseg.Display{f.dd}
}

func (f *counterFace) setColors(c colorScheme) { applyColors(f.displays(), c) }

func newFace(rt runtimeConfig) (face, error) {
	switch layout := rt.settings.GetString(sLayout); layout {
	case layoutClock:
		f, err := newClockFace(rt.screen, rt.settings)
		if err != nil {
			return nil, err
		}
		return f, nil
	case layoutChess:
		f, err := newChessFace(rt.screen, rt.settings, settingsRules(rt.settings))
		if err != nil {
			return nil, err
		}
		return f, nil
	case layoutCounter:
		return newCounterFace(rt.screen, rt.settings), nil
	default:
		return nil, errors.Errorf("unknown layout %q", layout)
	}
}

func settingsRules(settings configSettings) gameRules {
	return gameRules{
		Base:      settings.GetDuration(sChessBase),
		Increment: settings.GetDuration(sChessInc),
	}
}
