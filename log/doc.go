// Package log provides structured logging for gyeop built on [log/slog].
//
// A [Logger] wraps an slog.Logger with project-wide configuration: level,
// output format (JSON or text), timestamp layout, caller info, and a
// colorized pretty handler for interactive use. The zero Logger discards
// everything, so components can accept one unconditionally.
//
// Package-level functions log through a process-wide default logger that
// the CLI configures from its flags via [Config].
package log
