package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger tags every line with the worker that wrote it
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprintf(format, v...))
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprintln(v...))
}

// setupLogging sends the log package to a rotated file, and stdout too when
// asked. The caller closes the returned logger.
func setupLogging(settings configSettings, toStdout bool) (*lumberjack.Logger, error) {
	path := settings.GetString(sLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "log dir for %s", path)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    settings.GetInt(sLogMaxSize),
		MaxBackups: settings.GetInt(sLogMaxBackups),
	}

	var w io.Writer = lj
	if toStdout {
		w = io.MultiWriter(os.Stdout, lj)
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging to %s", path)
	return lj, nil
}
