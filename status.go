package main

import (
	"fmt"
	"sync"

	"dscheirer.com/tftclock/sevenseg"
)

type gameStatus struct {
	State     string `json:"state"`
	Turn      string `json:"turn"`
	White     string `json:"white"`
	Black     string `json:"black"`
	Move      int    `json:"move"`
	Base      string `json:"base"`
	Increment string `json:"increment"`
}

// statusSnapshot is what the display loop last drew
type statusSnapshot struct {
	Layout   string      `json:"layout"`
	Reading  string      `json:"reading"`
	OnColor  string      `json:"onColor"`
	OffColor string      `json:"offColor"`
	Counter  *int        `json:"counter,omitempty"`
	Game     *gameStatus `json:"game,omitempty"`
}

// displayStatus hands snapshots from the display loop to the config service
type displayStatus struct {
	mu   sync.Mutex
	snap statusSnapshot
}

func (ds *displayStatus) set(s statusSnapshot) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.snap = s
}

func (ds *displayStatus) get() statusSnapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.snap
}

func colorString(c sevenseg.Color) string {
	return fmt.Sprintf("0x%04X", uint16(c))
}

func takeSnapshot(layout string, f face, reading string, colors colorScheme) statusSnapshot {
	snap := statusSnapshot{
		Layout:   layout,
		Reading:  reading,
		OnColor:  colorString(colors.on),
		OffColor: colorString(colors.off),
	}
	switch v := f.(type) {
	case *counterFace:
		n := v.value
		snap.Counter = &n
	case *chessFace:
		g := v.game
		snap.Game = &gameStatus{
			State:     g.state.String(),
			Turn:      g.turn.String(),
			White:     g.remainingFor(white).String(),
			Black:     g.remainingFor(black).String(),
			Move:      g.moveNumber(),
			Base:      g.rules.Base.String(),
			Increment: g.rules.Increment.String(),
		}
	}
	return snap
}
