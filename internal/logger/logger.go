// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ServiceName is attached to every log line.
const ServiceName = "planner"

// New returns a logger writing JSON lines to w at the given level. An empty
// level means info; an unknown level is reported as an error together with an
// info-level logger.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	l := zerolog.New(w).Level(lvl).With().
		Str("service", ServiceName).
		Timestamp().
		Logger()
	return l, err
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel, err
	}
	return lvl, nil
}
