package main

import (
	"dscheirer.com/tftclock/tft"
)

// logDisplay is a screen with no hardware behind it, it logs what the
// digits read instead
type logDisplay struct {
	*tft.Framebuffer
	curDisplay string
	quiet      bool
	audit      []string
	logger     flogger
}

func newLogDisplay(settings configSettings, quiet bool) *logDisplay {
	return &logDisplay{
		Framebuffer: tft.NewFramebuffer(settings.GetInt(sScreenWidth), settings.GetInt(sScreenHeight), nil),
		quiet:       quiet,
		audit:       []string{},
		logger:      &ThreadLogger{name: "Screen"},
	}
}

func (ld *logDisplay) report(text string) {
	if text != ld.curDisplay {
		if !ld.quiet {
			ld.logger.Println(text)
		}
		ld.audit = append(ld.audit, text)
	}
	ld.curDisplay = text
}

func (ld *logDisplay) Close() {
}
