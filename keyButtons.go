package main

import (
	"errors"
	"time"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/stianeikeland/go-rpio"
)

// keyButtons toggles a button each time its key is typed
type keyButtons struct {
	buttons map[string]button
	opened  bool
}

func (kb *keyButtons) getButtons() *map[string]button {
	return &kb.buttons
}

func (kb *keyButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	kb.buttons = make(map[string]button)

	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.state = pressState{pressed: false, start: now, count: 0, changed: false}
		kb.buttons[k] = btn
	}
	return nil
}

func (kb *keyButtons) checkKeyboard(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)

	// poll with quick timeout
	// no key means "no change"
	go func() {
		rt.clock.Sleep(100 * time.Millisecond)
		termbox.Interrupt()
	}()

	var ev termbox.Event
	waitForInterrupt := true
	for waitForInterrupt {
		evTemp := termbox.PollEvent()
		switch evTemp.Type {
		case termbox.EventKey:
			// add an exit key
			if evTemp.Key == termbox.KeyCtrlC || evTemp.Key == termbox.KeyEsc {
				return ret, errors.New("Exit termbox loop")
			}
			ev = evTemp
		// wait for the interrupt to fire
		default:
			waitForInterrupt = false
		}
	}

	// a matching key flips the button, anything else keeps it where it is
	for k, v := range kb.buttons {
		match := ev.Ch != 0 && len(v.button.key) > 0 && rune(v.button.key[0]) == ev.Ch
		ret[k] = pinLevel(v.button, v.state.pressed != match)
	}

	return ret, nil
}

func (kb *keyButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	// simulated mode we check it all at once or we wait a lot
	return kb.checkKeyboard(rt)
}

func (kb *keyButtons) initButtons(settings configSettings) error {
	// the terminal screen may already own termbox
	if !termbox.IsInit {
		if err := termbox.Init(); err != nil {
			return err
		}
		kb.opened = true
	}

	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

func (kb *keyButtons) closeButtons() {
	if kb.opened {
		termbox.Close()
	}
}
