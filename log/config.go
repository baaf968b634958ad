package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return slog.Level(l).String()
	}
}

// Levels returns the names of all defined log levels.
func Levels() []string {
	return []string{
		LevelDebug.String(),
		LevelInfo.String(),
		LevelWarn.String(),
		LevelError.String(),
	}
}

// ParseLevel parses a string representation of a log level, falling back to
// DefaultLevel for unrecognized input. See [slog.Level.UnmarshalText] for
// accepted forms.
func ParseLevel(s string) Level {
	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the log output encoding.
type Format int

const (
	FormatJSON Format = iota // json
	FormatText               // text
)

// DefaultFormat is the default log output format.
const DefaultFormat = FormatJSON

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	default:
		return "json"
	}
}

// Formats returns the names of all defined log formats.
func Formats() []string {
	return []string{FormatJSON.String(), FormatText.String()}
}

// ParseFormat parses a string representation of a log format, falling back
// to DefaultFormat for unrecognized input.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "text") {
		return FormatText
	}

	return DefaultFormat
}

// DefaultTimeLayout is the default timestamp layout.
const DefaultTimeLayout = time.RFC3339

// config holds the full logger configuration.
type config struct {
	w          io.Writer
	level      Level
	format     Format
	timeLayout string
	caller     bool
	pretty     bool
}

// makeConfig creates a config for the writer with defaults applied, then
// overridden by the given options.
func makeConfig(w io.Writer, opts ...Option) config {
	cfg := config{
		w:          w,
		level:      DefaultLevel,
		format:     DefaultFormat,
		timeLayout: DefaultTimeLayout,
	}

	return apply(cfg, opts...)
}

// handler constructs the slog.Handler described by the config.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     slog.Level(c.level),
		AddSource: c.caller,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(
					a.Value.Time().Format(c.timeLayout),
				)
			}

			return a
		},
	}

	if c.format == FormatText {
		if c.pretty {
			return newPrettyTextHandler(c.w, opts)
		}

		return slog.NewTextHandler(c.w, opts)
	}

	return slog.NewJSONHandler(c.w, opts)
}
