// utility functions
package main

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit      chan struct{}
	effects   chan displayEffect
	configSvc chan configSvcMsg
	quitOnce  *sync.Once
}

// shutdown tells every worker to stop, any of them may call it
func (c commChannels) shutdown() {
	c.quitOnce.Do(func() { close(c.quit) })
}

// sendEffect gives up once the display loop has been told to quit
func (c commChannels) sendEffect(e displayEffect) {
	select {
	case c.effects <- e:
	case <-c.quit:
	}
}

type runtimeConfig struct {
	comms         commChannels
	clock         clockwork.Clock
	settings      configSettings
	screen        screen
	buttons       buttons
	configService configService
	status        *displayStatus
	logger        flogger
}

func initCommChannels() commChannels {
	quit := make(chan struct{}, 1)
	effectChannel := make(chan displayEffect, 10)
	configSvcChannel := make(chan configSvcMsg, 1)

	return commChannels{
		quit:      quit,
		effects:   effectChannel,
		configSvc: configSvcChannel,
		quitOnce:  &sync.Once{},
	}
}

func initRuntime(settings configSettings, clock clockwork.Clock) runtimeConfig {
	return runtimeConfig{
		clock:    clock,
		settings: settings,
		comms:    initCommChannels(),
		status:   &displayStatus{},
		logger:   &ThreadLogger{name: "Main"},
	}
}

func toButtonInfo(val interface{}) (*buttonInfo, error) {
	switch v := val.(type) {
	case buttonInfo:
		return &v, nil
	default:
		return nil, fmt.Errorf("Bad type: %T", v)
	}
}

func toBool(val interface{}) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("Bad type: %T", v)
	}
}

func toInt(val interface{}) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	default:
		return -1, fmt.Errorf("Bad type: %T", v)
	}
}

func toColors(val interface{}) (*colorScheme, error) {
	switch v := val.(type) {
	case colorScheme:
		return &v, nil
	default:
		return nil, fmt.Errorf("Bad type: %T", v)
	}
}

func toRules(val interface{}) (*gameRules, error) {
	switch v := val.(type) {
	case gameRules:
		return &v, nil
	default:
		return nil, fmt.Errorf("Bad type: %T", v)
	}
}
