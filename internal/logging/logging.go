// Package logging provides the leveled loggers used throughout picnotes.
//
// All output goes to stderr; messages below the configured level are
// discarded.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"none":    LevelNone,
	"off":     LevelNone,
}

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger

	output io.Writer = os.Stderr
	level            = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	error = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel maps a level name like "debug" or "warning" to a Level.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// SetLevelName sets the level from its name.
// Unknown names disable logging altogether.
func SetLevelName(s string) {
	l, ok := ParseLevel(s)
	if !ok {
		l = LevelNone
	}
	SetLevel(l)
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	level = l
	apply()
}

// SetOutput redirects enabled loggers to w.
func SetOutput(w io.Writer) {
	output = w
	apply()
}

func apply() {
	for i, lg := range []*log.Logger{debug, info, warning, error} {
		if Level(i) >= level {
			lg.SetOutput(output)
		} else {
			lg.SetOutput(io.Discard)
		}
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelNone:
		return "none"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
