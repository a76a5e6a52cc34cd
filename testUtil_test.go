package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gopkg.in/natefinch/lumberjack.v2"
	"gotest.tools/assert"
)

var testSettings configSettings
var testlog *lumberjack.Logger
var cfgFile = "./testdata/config.conf"

func TestMain(m *testing.M) {
	var err error
	testSettings, err = initSettings(cfgFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	testSettings.settings[sLogFile] = filepath.Join(os.TempDir(), "tftclock", "tftclock_test.log")
	testlog, err = setupLogging(testSettings, false)
	if err != nil {
		log.Fatal(err.Error())
	}

	// run the tests
	code := m.Run()
	testlog.Close()

	os.Exit(code)
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

// each test gets its own copy, tests change settings freely
func copySettings(s configSettings) configSettings {
	c := make(map[string]interface{}, len(s.settings))
	for k, v := range s.settings {
		c[k] = v
	}
	return configSettings{settings: c}
}

func initTestRuntime(settings configSettings) runtimeConfig {
	rt := initRuntime(copySettings(settings), clockwork.NewFakeClock())
	rt.screen = newLogDisplay(rt.settings, false)
	rt.buttons = &noButtons{}
	rt.configService = &testConfigService{}
	rt.logger = &ThreadLogger{name: "Test"}
	return rt
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	rt := initTestRuntime(testSettings)
	return rt, rt.clock.(clockwork.FakeClock), rt.comms
}

// testRun starts a worker, the returned channel closes when it exits
func testRun(rt runtimeConfig, worker func(runtimeConfig)) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker(rt)
	}()
	return done
}

// testBlockDuration walks the clock forward by blockDur until totalDur has
// gone by, letting the worker run between steps
func testBlockDuration(clock clockwork.FakeClock, blockDur time.Duration, totalDur time.Duration) {
	for elapsed := time.Duration(0); elapsed < totalDur; elapsed += blockDur {
		clock.BlockUntil(1)
		clock.Advance(blockDur)
	}
	clock.BlockUntil(1)
}

func testQuit(rt runtimeConfig, done chan struct{}) {
	rt.comms.shutdown()
	clock := rt.clock.(clockwork.FakeClock)
	for {
		select {
		case <-done:
			return
		default:
			// wake whoever is sleeping so they see the quit
			clock.Advance(time.Hour)
			time.Sleep(time.Millisecond)
		}
	}
}

func effectRead(t *testing.T, c chan displayEffect) (displayEffect, error) {
	select {
	case e := <-c:
		return e, nil
	default:
		assert.Assert(t, false, "Nothing to read from effect channel")
	}
	return displayEffect{}, nil
}

func effectNoRead(t *testing.T, c chan displayEffect) (displayEffect, error) {
	select {
	case e := <-c:
		assert.Assert(t, e == displayEffect{}, "Got an unexpected value from effect channel")
	default:
	}
	return displayEffect{}, nil
}

type testConfigService struct {
	handler *apiHandler
	addr    string
	stopped bool
}

func (t *testConfigService) launch(handler *apiHandler, addr string) {
	t.handler = handler
	t.addr = addr
}

func (t *testConfigService) stop() {
	t.stopped = true
}
