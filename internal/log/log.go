// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

const tracePrefix = "TRACE: "

var traceEnabled bool

// InitLogger installs CustomHandler on apex's global logger and sets the
// level from a name such as "debug" or "trace". Unknown or empty names fall
// back to "error". The loader never calls this; the host application does.
func InitLogger(level string, w io.Writer) {
	level = strings.ToLower(strings.TrimSpace(level))
	traceEnabled = level == "trace"

	var apexLevel log.Level
	switch level {
	case "trace", "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}

	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(apexLevel)
}

// CustomHandler writes one "timestamp level message" line per entry. Fields
// attached with WithError or WithField are appended as key=value pairs.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	message := e.Message
	level := "?"
	if strings.HasPrefix(message, tracePrefix) {
		level = "T"
		message = message[len(tracePrefix):]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	var b strings.Builder
	b.WriteString(message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", timestamp.Format("2006-01-02 15:04:05"), level, b.String())
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

// WithField returns an entry carrying a single field.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}
