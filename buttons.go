package main

import (
	"time"

	"github.com/stianeikeland/go-rpio"
)

type buttons interface {
	readButtons(rt runtimeConfig) (map[string]rpio.State, error)
	setupButtons(pins map[string]buttonMap, rt runtimeConfig) error
	initButtons(settings configSettings) error
	closeButtons()
	getButtons() *map[string]button
}

// check the press state, and return the press state
type pressState struct {
	pressed bool      // is it pressed?
	start   time.Time // when did this state start?
	count   int       // # of whole seconds since it started
	changed bool      // did the above data change at all?
}

type button struct {
	button buttonMap
	rpin   rpio.Pin
	state  pressState
}

const dButtonSleep = 20 * time.Millisecond

// pinLevel is what the pin reads for a press state under the button's wiring
func pinLevel(bm buttonMap, pressed bool) rpio.State {
	if pressed == bm.pullup {
		return rpio.Low
	}
	return rpio.High
}

func openButtons(settings configSettings) buttons {
	switch settings.GetString(sButtons) {
	case buttonsRPIO:
		return &rpioButtons{}
	case buttonsKeys:
		return &keyButtons{}
	default:
		return &noButtons{}
	}
}

func checkButtons(rt runtimeConfig) (map[string]button, error) {
	now := rt.clock.Now()

	btns := rt.buttons.getButtons()
	results, err := rt.buttons.readButtons(rt)
	if err != nil {
		return *btns, err
	}

	for k, v := range *btns {
		res, ok := results[k]
		if !ok {
			continue
		}

		btn := v
		btn.state.changed = false

		if res == pinLevel(v.button, true) {
			// is this a change from before?
			if btn.state.pressed {
				// no button state change, update the duration count
				btn.state.count = int(now.Sub(btn.state.start) / time.Second)
				if v.state.count != btn.state.count {
					btn.state.changed = true
				}
			} else {
				// just noticed it was pressed
				btn.state = pressState{pressed: true, start: now, count: 0, changed: true}
			}
		} else if btn.state.pressed {
			// just noticed the release, a button that stays up is not a change
			btn.state = pressState{pressed: false, start: now, count: 0, changed: true}
		}
		if btn.state.changed {
			rt.logger.Printf("button changed state: %+v", btn.state)
		}
		(*btns)[k] = btn
	}

	return *btns, nil
}

func startWatchButtons(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Buttons"}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runWatchButtons(rt)
	}()
}

func runWatchButtons(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("exiting runWatchButtons")
	}()

	settings := rt.settings
	comms := rt.comms
	err := rt.buttons.initButtons(settings)
	if err != nil {
		rt.logger.Println(err.Error())
		return
	}

	// we now should defer the closeButtons call to when this function exists
	defer rt.buttons.closeButtons()

	pins := make(map[string]buttonMap)
	for _, name := range settings.GetAllButtonNames() {
		pins[name] = settings.GetButtonMap(name)
	}

	err = rt.buttons.setupButtons(pins, rt)
	if err != nil {
		rt.logger.Println(err.Error())
		return
	}

	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from runWatchButtons")
			return
		default:
		}

		newButtons, err := checkButtons(rt)
		if err != nil {
			// we're done, take everyone else down too
			rt.logger.Printf("quit from runWatchButtons: %s", err.Error())
			comms.shutdown()
			return
		}

		for k, v := range newButtons {
			if v.state.changed {
				diff := time.Duration(v.state.count) * time.Second
				switch k {
				case sMainBtn:
					rt.logger.Println("sending main button message")
					comms.sendEffect(mainButtonEffect(v.state.pressed, diff))
				case sPauseBtn:
					rt.logger.Println("sending pause button message")
					comms.sendEffect(pauseButtonEffect(v.state.pressed, diff))
				case sResetBtn:
					rt.logger.Println("sending reset button message")
					comms.sendEffect(resetButtonEffect(v.state.pressed, diff))
				default:
					rt.logger.Printf("Unhandled button %s", k)
				}
			}
		}

		rt.clock.Sleep(dButtonSleep)
	}
}
