package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	default:
		return fmt.Sprintf("VerbosityLevel(%d)", int(v))
	}
}

// ParseVerbosity parses a case-insensitive level name.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug":
		return Verbose, nil
	case "info", "":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	default:
		return Info, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
	}
}

// SlogLevel maps the verbosity to a slog level. Off maps above every level
// slog emits.
func (v VerbosityLevel) SlogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	case Off:
		return slog.LevelError + 100
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the given verbosity.
func NewLogger(w io.Writer, v VerbosityLevel) *slog.Logger {
	if v == Off {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: v.SlogLevel()}))
}

// Configure installs a logger for w as the slog default.
func Configure(w io.Writer, v VerbosityLevel) {
	slog.SetDefault(NewLogger(w, v))
}
