package main

import (
	"time"

	"dscheirer.com/tftclock/sevenseg"
)

type displayEffect struct {
	id  int
	val interface{}
}

// one of the interface types for displayEffect
type buttonInfo struct {
	pressed  bool
	duration time.Duration
}

const (
	eMainButton = iota
	ePauseButton
	eResetButton
	eDebug
	eColors
	eNewGame
	eCounter
	eTerminate
)

// channel messaging functions
func mainButtonEffect(p bool, d time.Duration) displayEffect {
	return displayEffect{id: eMainButton, val: buttonInfo{pressed: p, duration: d}}
}

func pauseButtonEffect(p bool, d time.Duration) displayEffect {
	return displayEffect{id: ePauseButton, val: buttonInfo{pressed: p, duration: d}}
}

func resetButtonEffect(p bool, d time.Duration) displayEffect {
	return displayEffect{id: eResetButton, val: buttonInfo{pressed: p, duration: d}}
}

func toggleDebugDump(on bool) displayEffect {
	return displayEffect{id: eDebug, val: on}
}

func colorsEffect(c colorScheme) displayEffect {
	return displayEffect{id: eColors, val: c}
}

func newGameEffect(r gameRules) displayEffect {
	return displayEffect{id: eNewGame, val: r}
}

func counterEffect(n int) displayEffect {
	return displayEffect{id: eCounter, val: n}
}

func terminateEffect() displayEffect {
	return displayEffect{id: eTerminate}
}

// freshPress is the leading edge of a press, held buttons report again
// every second
func freshPress(val interface{}) bool {
	info, err := toButtonInfo(val)
	return err == nil && info.pressed && info.duration == 0
}

func startDisplay(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Display"}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runDisplay(rt)
	}()
}

func runDisplay(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("exiting runDisplay")
	}()

	settings := rt.settings
	comms := rt.comms
	layout := settings.GetString(sLayout)
	background := settings.GetColor(sBackground)
	sleep := settings.GetDuration(sSleepTime)
	debug := settings.GetBool(sDebug)
	colors := colorScheme{on: settings.GetColor(sOnColor), off: settings.GetColor(sOffColor)}

	// nothing to show without a screen, bring the rest down
	if err := rt.screen.Clear(background); err != nil {
		rt.logger.Printf("Error: %s", err.Error())
		comms.shutdown()
		return
	}

	f, err := newFace(rt)
	if err != nil {
		rt.logger.Printf("Error: %s", err.Error())
		comms.shutdown()
		return
	}
	rep, _ := rt.screen.(reporter)
	chess, _ := f.(*chessFace)
	counter, _ := f.(*counterFace)
	last := ""

	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from runDisplay")
			return
		case e := <-comms.effects:
			now := rt.clock.Now()
			switch e.id {
			case eMainButton:
				if !freshPress(e.val) {
					break
				}
				if chess != nil {
					chess.game.press(now)
				} else if counter != nil {
					counter.value = (counter.value + 1) % 1000
				}
			case ePauseButton:
				if freshPress(e.val) && chess != nil {
					chess.game.togglePause(now)
				}
			case eResetButton:
				if !freshPress(e.val) {
					break
				}
				if chess != nil {
					chess.game.reset()
				} else if counter != nil {
					counter.value = 0
				}
			case eDebug:
				debug, _ = toBool(e.val)
				last = ""
			case eColors:
				c, err := toColors(e.val)
				if err != nil {
					rt.logger.Println(err.Error())
					break
				}
				colors = *c
				f.setColors(colors)
			case eNewGame:
				r, err := toRules(e.val)
				if err != nil || chess == nil {
					rt.logger.Printf("ignoring new game in %s layout", layout)
					break
				}
				if err := chess.newGame(*r); err != nil {
					rt.logger.Printf("Error: %s", err.Error())
					break
				}
				// the hours digits may have gone
				if err := rt.screen.Clear(background); err != nil {
					rt.logger.Printf("Error: %s", err.Error())
				}
			case eCounter:
				n, err := toInt(e.val)
				if err != nil || counter == nil {
					rt.logger.Printf("ignoring counter in %s layout", layout)
					break
				}
				if err := counter.set(n); err != nil {
					rt.logger.Printf("Error: %s", err.Error())
				}
			case eTerminate:
				rt.logger.Println("terminate")
				return
			default:
				rt.logger.Printf("Unhandled %d\n", e.id)
			}
		default:
		}

		text, err := f.draw(rt.clock.Now())
		if err != nil {
			rt.logger.Printf("Error: %s", err.Error())
		} else {
			if debug && text != last {
				for _, d := range f.displays() {
					rt.logger.Printf("\n%s", sevenseg.Dump(d))
				}
			}
			last = text
			if rep != nil {
				rep.report(text)
			}
		}
		rt.status.set(takeSnapshot(layout, f, text, colors))

		rt.clock.Sleep(sleep)
	}
}
