// Package logging builds the slog logger used by the ntree command. The
// library packages never log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Discard is a logger which drops everything, for use before configuration
// has been loaded and in tests.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return l, nil
}

// New returns a logger writing to w in the given format, text or json.
func New(w io.Writer, format, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: l}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}
