// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		loggerLevel Level
		context     []contextKeyValues
		level       Level
		s           string
		args        []interface{}
		outputRegex string
	}{
		"log_at_trace": {
			loggerLevel: Trace,
			level:       Trace,
			s:           "some words",
			outputRegex: timePrefixRegex + "TRACE    some words\n$",
		},
		"do_not_log_at_trace": {
			loggerLevel: Debug,
			level:       Trace,
			s:           "some words",
			outputRegex: "^$",
		},
		"log_at_debug_with_trace_set": {
			loggerLevel: Trace,
			level:       Debug,
			s:           "some words",
			outputRegex: timePrefixRegex + "DEBUG    some words\n$",
		},
		"critical_always_logged": {
			loggerLevel: Critical,
			level:       Critical,
			s:           "down",
			outputRegex: timePrefixRegex + "CRITICAL down\n$",
		},
		"format_string": {
			loggerLevel: Trace,
			level:       Trace,
			s:           "some %s",
			args:        []interface{}{"words"},
			outputRegex: timePrefixRegex + "TRACE    some words\n$",
		},
		"context": {
			loggerLevel: Info,
			context: []contextKeyValues{
				{key: "pkg", values: []string{"extension"}},
				{key: "fn", values: []string{"send", "execute"}},
			},
			level:       Info,
			s:           "some words",
			outputRegex: timePrefixRegex + "INFO     some words\tpkg=extension fn=send,execute\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			logger := &Logger{
				settings: settings{
					writer:  buffer,
					level:   levelPtr(testCase.loggerLevel),
					colour:  boolPtr(false),
					context: testCase.context,
				},
				mutex: new(sync.Mutex),
			}

			logger.log(testCase.level, testCase.s, testCase.args...)

			regex, err := regexp.Compile(testCase.outputRegex)
			require.NoError(t, err)

			assert.Regexp(t, regex, buffer.String())
		})
	}
}

func Test_Logger_LevelsLog(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := New(SetWriter(buffer), SetLevel(Trace))

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Critical("critical")
	logger.Tracef("%s", "tracef")
	logger.Debugf("%s", "debugf")
	logger.Infof("%s", "infof")
	logger.Warnf("%s", "warnf")
	logger.Errorf("%s", "errorf")
	logger.Criticalf("%s", "criticalf")

	expectedLines := []string{
		"TRACE    trace",
		"DEBUG    debug",
		"INFO     info",
		"WARN     warn",
		"ERROR    error",
		"CRITICAL criticalf",
	}

	output := buffer.String()
	for _, line := range expectedLines {
		assert.Contains(t, output, line)
	}
	assert.Equal(t, 12, bytes.Count(buffer.Bytes(), []byte("\n")))
}

func Test_Logger_colour(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := New(SetWriter(buffer), SetColour(false))

	logger.Warn("plain")

	assert.Regexp(t, timePrefixRegex+"WARN     plain\n$", buffer.String())
}
