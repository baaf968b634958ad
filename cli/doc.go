// Package cli implements the gyeop command-line interface.
//
// The CLI is built with [github.com/alecthomas/kong] and exposes three
// commands: eval (the default), dump, and repl. Flags may also be supplied
// through JSON or YAML configuration files in the user config directory.
package cli
