package sevenseg

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func newTestClock(t *testing.T, showHours bool) (*ClockDisplay, *recorder) {
	r := &recorder{}
	cfg := DefaultConfig()
	cfg.ShowHours = showHours
	cd, err := NewClockDisplay(r, cfg)
	assert.NilError(t, err)
	return cd, r
}

func masks(d Display) []byte {
	var ret []byte
	for _, m := range d.Modules() {
		ret = append(ret, m.Mask())
	}
	return ret
}

func xs(d Display) []int {
	var ret []int
	for _, m := range d.Modules() {
		ret = append(ret, m.X())
	}
	return ret
}

func TestClockLayout(t *testing.T) {
	cd, _ := newTestClock(t, true)

	assert.DeepEqual(t, xs(cd), []int{0, 21, 50, 71, 100, 116})
	for _, pos := range []int{HH1, HH2, MM1, MM2} {
		m := cd.Module(pos)
		assert.Equal(t, m.Width(), 16)
		assert.Equal(t, m.Height(), 32)
		assert.Equal(t, m.LedWidth(), 3)
	}
	for _, pos := range []int{SS1, SS2} {
		m := cd.Module(pos)
		assert.Equal(t, m.Width(), 12)
		assert.Equal(t, m.Height(), 24)
		assert.Equal(t, m.LedWidth(), 3)
	}
	assert.Equal(t, cd.Width(), 128)
	assert.Equal(t, cd.Height(), 32)
	assert.Equal(t, cd.ModuleWidth(), 16)
	assert.Equal(t, cd.ModuleHeight(), 32)
	assert.Equal(t, cd.Kind(), LayoutClock)
}

func TestClockThickSecondsLed(t *testing.T) {
	r := &recorder{}
	cfg := DefaultConfig()
	cfg.LedWidth = 6
	cd, err := NewClockDisplay(r, cfg)
	assert.NilError(t, err)
	assert.Equal(t, cd.Module(MM2).LedWidth(), 6)
	// 6 * 0.75 + 1
	assert.Equal(t, cd.Module(SS1).LedWidth(), 5)
	assert.Equal(t, cd.Module(SS2).LedWidth(), 5)
}

func TestClockLedWidthSurvivesRelayout(t *testing.T) {
	cd, err := NewClockDisplay(&recorder{}, DefaultConfig())
	assert.NilError(t, err)

	cd.SetLedSegmentWidth(6)
	want := func() {
		for _, m := range cd.Modules() {
			assert.Equal(t, m.LedWidth(), 6)
		}
	}
	want()

	// moving or resizing doesn't bring the scaled seconds stroke back
	cd.SetPosition(3, 4)
	want()
	cd.SetModuleSize(32, 64)
	want()
	assert.Equal(t, cd.Config().LedWidth, 6)
}

func TestClockHoursHiddenLayout(t *testing.T) {
	cd, _ := newTestClock(t, false)

	assert.Equal(t, len(cd.Modules()), 4)
	assert.DeepEqual(t, xs(cd), []int{0, 21, 50, 66})
	assert.Equal(t, cd.Width(), 78)
}

func TestDefaultSecondsScale(t *testing.T) {
	// a zero scale would collapse the seconds to nothing
	assert.Equal(t, DefaultConfig().SecondsScale, 0.75)

	cfg := DefaultConfig()
	cfg.SecondsScale = 0
	_, err := NewClockDisplay(&recorder{}, cfg)
	assert.Equal(t, err, ErrBadScale)

	cfg.SecondsScale = -1
	_, err = NewClockDisplay(&recorder{}, cfg)
	assert.Equal(t, err, ErrBadScale)
}

func TestClockSingleDigitHour(t *testing.T) {
	cd, _ := newTestClock(t, true)

	assert.NilError(t, cd.Display(9, 5, 3, true))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x6F, 0x3F, 0x6D, 0x3F, 0x4F})
	assert.Equal(t, cd.Module(HH1).Enabled(), false)

	assert.NilError(t, cd.Display(10, 5, 3, true))
	assert.DeepEqual(t, masks(cd), []byte{0x06, 0x3F, 0x3F, 0x6D, 0x3F, 0x4F})
	assert.Equal(t, cd.Module(HH1).Enabled(), true)
}

func TestClockMinutesBlankWithoutHours(t *testing.T) {
	cd, _ := newTestClock(t, false)

	assert.NilError(t, cd.Display(0, 5, 3, true))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x6D, 0x3F, 0x4F})

	assert.NilError(t, cd.Display(0, 12, 30, true))
	assert.DeepEqual(t, masks(cd), []byte{0x06, 0x5B, 0x4F, 0x3F})
}

func TestClockSeparators(t *testing.T) {
	cd, r := newTestClock(t, true)

	assert.NilError(t, cd.Display(12, 34, 56, true))
	want := []call{
		{Op: "f", X: 43, Y: 8, W: 2, H: 2, C: 255},
		{Op: "f", X: 43, Y: 23, W: 2, H: 2, C: 255},
		{Op: "f", X: 93, Y: 6, W: 2, H: 2, C: 255},
		{Op: "f", X: 93, Y: 17, W: 2, H: 2, C: 255},
	}
	assert.DeepEqual(t, r.fills(), want)
	assert.Equal(t, r.outside, 0)

	r.reset()
	assert.NilError(t, cd.Display(12, 34, 56, false))
	for i := range want {
		want[i].C = 0
	}
	assert.DeepEqual(t, r.fills(), want)
}

func TestClockNoSeparatorsWithoutHours(t *testing.T) {
	cd, r := newTestClock(t, false)
	assert.NilError(t, cd.Display(0, 34, 56, true))
	assert.Equal(t, len(r.fills()), 0)
}

func TestClockDisplaySeconds(t *testing.T) {
	cd, _ := newTestClock(t, true)

	// 1:02:05
	assert.NilError(t, cd.DisplaySeconds(3725, true))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x06, 0x3F, 0x5B, 0x3F, 0x6D})

	// a day and an hour wraps to 1:01:01
	assert.NilError(t, cd.DisplaySeconds(90061, true))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x06, 0x3F, 0x06, 0x3F, 0x06})

	assert.NilError(t, cd.DisplayMillis(3725999, true))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x06, 0x3F, 0x5B, 0x3F, 0x6D})

	assert.NilError(t, cd.DisplayDuration(23*time.Hour+59*time.Minute+58*time.Second, true))
	assert.DeepEqual(t, masks(cd), []byte{0x5B, 0x4F, 0x6D, 0x6F, 0x6D, 0x7F})

	when := time.Date(2020, 3, 1, 7, 8, 9, 0, time.UTC)
	assert.NilError(t, cd.DisplayTime(when, false))
	assert.DeepEqual(t, masks(cd), []byte{0x00, 0x07, 0x3F, 0x7F, 0x3F, 0x6F})
}

func TestClockRejectsNegative(t *testing.T) {
	cd, _ := newTestClock(t, true)
	assert.Equal(t, cd.Display(1, -5, 0, true), ErrBadDigit)
}

func TestClockBulkSetters(t *testing.T) {
	cd, r := newTestClock(t, false)

	cd.SetOnColor(Green)
	cd.SetOffColor(DarkGrey)
	cd.SetLedSegmentWidth(2)
	for _, m := range cd.Modules() {
		assert.Equal(t, m.Colors(), ColorPair{On: Green, Off: DarkGrey})
		assert.Equal(t, m.LedWidth(), 2)
	}
	// hidden hours are left alone
	assert.Equal(t, cd.Module(HH1).Colors(), ColorPair{On: 255, Off: 0})
	assert.Equal(t, cd.Config().OnColor, Green)

	assert.NilError(t, cd.Display(0, 0, 0, true))
	assert.Equal(t, r.colored(255), 0)
}

func TestClockRelayout(t *testing.T) {
	cd, _ := newTestClock(t, true)

	cd.SetPosition(10, 5)
	assert.DeepEqual(t, xs(cd), []int{10, 31, 60, 81, 110, 126})
	for _, m := range cd.Modules() {
		assert.Equal(t, m.Y(), 5)
	}
	assert.Equal(t, cd.Width(), 128)

	cd.SetModuleSize(32, 64)
	assert.Equal(t, cd.ModuleWidth(), 32)
	assert.Equal(t, cd.ModuleHeight(), 64)
	assert.Equal(t, cd.Module(SS1).Height(), 48)
	assert.Equal(t, cd.Height(), 64)
}
