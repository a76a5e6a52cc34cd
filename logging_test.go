package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestThreadLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(testlog)

	tl := &ThreadLogger{name: "Buttons"}
	tl.Printf("pin %d", 23)
	tl.Println("released", "main")

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "[Buttons] pin 23\n"), out)
	assert.Assert(t, strings.Contains(out, "[Buttons] released main\n"), out)
}

func TestSetupLogging(t *testing.T) {
	dir, err := os.MkdirTemp("", "tftclock")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)

	s := copySettings(testSettings)
	s.settings[sLogFile] = filepath.Join(dir, "nested", "clock.log")

	lj, err := setupLogging(s, false)
	assert.NilError(t, err)
	log.Println("hello from the test")
	lj.Close()
	log.SetOutput(testlog)

	data, err := os.ReadFile(filepath.Join(dir, "nested", "clock.log"))
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(data), "hello from the test"))
	assert.Equal(t, lj.MaxSize, 10)
	assert.Equal(t, lj.MaxBackups, 3)
}
