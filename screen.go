package main

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"dscheirer.com/tftclock/sevenseg"
	"dscheirer.com/tftclock/tft"
)

type screen interface {
	sevenseg.Surface
	Size() (w, h int)
	Clear(c sevenseg.Color) error
	Close()
}

// reporter is told what the digits read after every frame
type reporter interface {
	report(text string)
}

type panelScreen struct {
	*tft.Panel
	port spi.PortCloser
}

func (ps *panelScreen) Close() {
	// leave the last frame up, just let go of the bus
	ps.port.Close()
}

func openPanel(settings configSettings) (screen, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}

	name := settings.GetString(sSPIPort)
	port, err := spireg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open spi port '%s'", name)
	}

	var dc gpio.PinOut
	if pin := settings.GetString(sDCPin); pin != "" {
		p := gpioreg.ByName(pin)
		if p == nil {
			port.Close()
			return nil, errors.Errorf("no gpio pin '%s' for d/c", pin)
		}
		dc = p
	}

	speed := physic.Frequency(settings.GetInt(sSPISpeed)) * physic.MegaHertz
	if speed <= 0 {
		speed = tft.DefaultSpeed
	}
	pn, err := tft.NewPanel(port, dc, settings.GetInt(sScreenWidth), settings.GetInt(sScreenHeight), speed)
	if err != nil {
		port.Close()
		return nil, err
	}
	if err := pn.Init(); err != nil {
		port.Close()
		return nil, errors.Wrapf(err, "init %s", pn)
	}
	return &panelScreen{Panel: pn, port: port}, nil
}

func openScreen(settings configSettings) (screen, error) {
	switch kind := settings.GetString(sSurface); kind {
	case surfaceSPI:
		return openPanel(settings)
	case surfaceTerm:
		t, err := tft.NewTerminal(settings.GetInt(sScreenWidth), settings.GetInt(sScreenHeight))
		if err != nil {
			return nil, err
		}
		return t, nil
	case surfaceLog:
		return newLogDisplay(settings, false), nil
	case surfaceNone:
		return newLogDisplay(settings, true), nil
	default:
		return nil, errors.Errorf("unknown surface '%s'", kind)
	}
}
