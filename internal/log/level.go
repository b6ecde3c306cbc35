// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level.
	Critical
)

func (level Level) String() (s string) {
	switch level {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return "???"
	}
}

var levelColours = map[Level]color.Attribute{
	Trace:    color.FgHiCyan,
	Debug:    color.FgHiBlue,
	Info:     color.FgCyan,
	Warn:     color.FgYellow,
	Error:    color.FgHiRed,
	Critical: color.FgRed,
}

// ColouredString returns the level string coloured for terminals.
func (level Level) ColouredString() (s string) {
	attribute, ok := levelColours[level]
	if !ok {
		attribute = color.Reset
	}
	return color.New(attribute).Sprint(level.String())
}

// ErrLevelNotRecognised is returned by ParseLevel for unknown levels.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// shortLevels maps the four letter level names to their level.
var shortLevels = map[string]Level{
	"TRCE": Trace,
	"DBUG": Debug,
	"EROR": Error,
	"CRIT": Critical,
}

// ParseLevel parses a level name, case insensitively. It accepts the
// full level names as well as the short forms trce, dbug, eror and crit.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(s)
	for level = Trace; level <= Critical; level++ {
		if level.String() == upper {
			return level, nil
		}
	}
	if level, ok := shortLevels[upper]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
