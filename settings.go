package main

import (
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"dscheirer.com/tftclock/sevenseg"
)

// settings keys
const (
	sLayout        = "layout"
	sSurface       = "surface"
	sSleepTime     = "sleepTime"
	sLogFile       = "logFile"
	sLogMaxSize    = "logMaxSizeMB"
	sLogMaxBackups = "logMaxBackups"
	sDebug         = "debug_dump"
	sBlink         = "blinkSeparator"
	sScreenWidth   = "screenWidth"
	sScreenHeight  = "screenHeight"
	sDigitX        = "digitX"
	sDigitY        = "digitY"
	sDigitWidth    = "digitWidth"
	sDigitHeight   = "digitHeight"
	sLedWidth      = "ledWidth"
	sSecondsScale  = "secondsScale"
	sShowHours     = "showHours"
	sOnColor       = "onColor"
	sOffColor      = "offColor"
	sBackground    = "background"
	sSPIPort       = "spiPort"
	sSPISpeed      = "spiSpeedMHz"
	sDCPin         = "dcPin"
	sButtons       = "buttons"
	sMainBtn       = "mainButton"
	sPauseBtn      = "pauseButton"
	sResetBtn      = "resetButton"
	sHTTPAddr      = "httpAddr"
	sHTTPUser      = "httpUser"
	sHTTPSecret    = "httpSecret"
	sChessBase     = "chessBase"
	sChessInc      = "chessIncrement"
)

// layouts
const (
	layoutClock   = "clock"
	layoutChess   = "chess"
	layoutCounter = "counter"
)

// surfaces
const (
	surfaceSPI  = "spi"
	surfaceTerm = "term"
	surfaceLog  = "log"
	surfaceNone = "none"
)

// button drivers
const (
	buttonsRPIO = "rpio"
	buttonsKeys = "keys"
	buttonsNone = "none"
)

type buttonMap struct {
	pin    int
	key    string
	pullup bool
}

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sLayout] = layoutClock
	s[sSleepTime] = 50 * time.Millisecond
	s[sLogFile] = "/var/log/tftclock.log"
	s[sLogMaxSize] = 10
	s[sLogMaxBackups] = 3
	s[sDebug] = false
	s[sBlink] = true
	s[sScreenWidth] = 320
	s[sScreenHeight] = 240
	s[sDigitX] = 4
	s[sDigitY] = 4
	s[sDigitWidth] = 32
	s[sDigitHeight] = 64
	s[sLedWidth] = 5
	s[sSecondsScale] = sevenseg.DefaultSecondsScale
	s[sShowHours] = true
	s[sOnColor] = sevenseg.Red
	s[sOffColor] = sevenseg.Color(0x2000)
	s[sBackground] = sevenseg.Black
	s[sSPIPort] = ""
	s[sSPISpeed] = 32
	s[sDCPin] = "GPIO25"
	s[sMainBtn] = buttonMap{pin: 23, key: "m", pullup: true}
	s[sPauseBtn] = buttonMap{pin: 24, key: "p", pullup: true}
	s[sResetBtn] = buttonMap{pin: 18, key: "r", pullup: true}
	s[sHTTPAddr] = ":8080"
	s[sHTTPUser] = "tftclock"
	s[sHTTPSecret] = ""
	s[sChessBase] = 5 * time.Minute
	s[sChessInc] = 3 * time.Second

	// real hardware only shows up on the pi
	if runtime.GOARCH == "arm" {
		s[sSurface] = surfaceSPI
		s[sButtons] = buttonsRPIO
	} else {
		s[sSurface] = surfaceTerm
		s[sButtons] = buttonsKeys
	}

	return configSettings{settings: s}
}

func parseColor(v string) (sevenseg.Color, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(v) == 6 && !strings.HasPrefix(strings.ToLower(v), "0x") {
		// web style RRGGBB
		rgb, err := strconv.ParseUint(v, 16, 32)
		if err != nil {
			return 0, err
		}
		return sevenseg.RGB565(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)), nil
	}
	c, err := strconv.ParseUint(v, 0, 16)
	if err != nil {
		return 0, err
	}
	return sevenseg.Color(c), nil
}

func buttonFromJSON(data []byte, key string, def buttonMap) (buttonMap, error) {
	bm := def
	if pin, err := jsonparser.GetInt(data, key, "pin"); err == nil {
		bm.pin = int(pin)
	}
	if k, err := jsonparser.GetString(data, key, "key"); err == nil {
		if len(k) != 1 {
			return bm, errors.Errorf("button key %q must be one character", k)
		}
		bm.key = k
	}
	if pullup, err := jsonparser.GetBoolean(data, key, "pullup"); err == nil {
		bm.pullup = pullup
	}
	return bm, nil
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		_, dataType, _, err := jsonparser.Get(data, k)
		if err != nil || dataType == jsonparser.NotExist {
			continue
		}

		switch initVal.(type) {
		case int:
			var v int64
			v, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(v)
			}
		case float64:
			var v float64
			v, err = jsonparser.GetFloat(data, k)
			if err == nil {
				s.settings[k] = v
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var d time.Duration
				d, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = d
				}
			}
		case sevenseg.Color:
			var c sevenseg.Color
			if dataType == jsonparser.Number {
				var v int64
				v, err = jsonparser.GetInt(data, k)
				if err == nil && (v < 0 || v > 0xFFFF) {
					err = errors.Errorf("color %d out of range", v)
				}
				c = sevenseg.Color(v)
			} else {
				var str string
				str, err = jsonparser.GetString(data, k)
				if err == nil {
					c, err = parseColor(str)
				}
			}
			if err == nil {
				s.settings[k] = c
			}
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		case buttonMap:
			s.settings[k], err = buttonFromJSON(data, k, initVal.(buttonMap))
		default:
			err = errors.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

func initSettings(configFile string) (configSettings, error) {
	log.Println("initSettings")

	// defaults
	s := defaultSettings()

	// try to open the config file
	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return s, errors.Wrapf(err, "could not load conf file '%s'", configFile)
	}

	log.Printf("Reading configuration from '%s'", configFile)

	// json parse it
	if err := s.settingsFromJSON(data); err != nil {
		return s, errors.Wrapf(err, "parse '%s'", configFile)
	}

	return s, nil
}

func (s *configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s *configSettings) GetFloat(key string) float64 {
	switch v := s.settings[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func (s *configSettings) GetColor(key string) sevenseg.Color {
	switch v := s.settings[key].(type) {
	case sevenseg.Color:
		return v
	default:
		return sevenseg.Black
	}
}

func (s *configSettings) GetButtonMap(key string) buttonMap {
	switch v := s.settings[key].(type) {
	case buttonMap:
		return v
	default:
		return buttonMap{}
	}
}

func (s *configSettings) GetAllButtonNames() []string {
	return []string{sMainBtn, sPauseBtn, sResetBtn}
}

// digitConfig is the widget config the settings describe
func (s *configSettings) digitConfig() sevenseg.Config {
	cfg := sevenseg.DefaultConfig()
	cfg.X = s.GetInt(sDigitX)
	cfg.Y = s.GetInt(sDigitY)
	cfg.Width = s.GetInt(sDigitWidth)
	cfg.Height = s.GetInt(sDigitHeight)
	cfg.LedWidth = s.GetInt(sLedWidth)
	cfg.OnColor = s.GetColor(sOnColor)
	cfg.OffColor = s.GetColor(sOffColor)
	cfg.ShowHours = s.GetBool(sShowHours)
	cfg.SecondsScale = s.GetFloat(sSecondsScale)
	return cfg
}

func (s *configSettings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.settings[k]
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
