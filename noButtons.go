package main

import (
	"github.com/stianeikeland/go-rpio"
)

// noButtons never changes on its own, tests drive it with press and clear
type noButtons struct {
	buttons map[string]button
	states  map[string]rpio.State
}

func (nb *noButtons) getButtons() *map[string]button {
	return &nb.buttons
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)
	for k, v := range nb.states {
		ret[k] = v
	}
	return ret, nil
}

func (nb *noButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	nb.buttons = make(map[string]button)
	nb.states = make(map[string]rpio.State)

	now := rt.clock.Now()
	for k, v := range pins {
		nb.buttons[k] = button{button: v, state: pressState{start: now}}
		nb.states[k] = pinLevel(v, false)
	}
	return nil
}

func (nb *noButtons) initButtons(settings configSettings) error {
	return nil
}

func (nb *noButtons) closeButtons() {
}

func (nb *noButtons) press(name string) {
	nb.states[name] = pinLevel(nb.buttons[name].button, true)
}

func (nb *noButtons) clear() {
	for k, v := range nb.buttons {
		nb.states[k] = pinLevel(v.button, false)
	}
}
