// Package cmd implements the gyeop CLI subcommands.
//
// Commands receive their shared inputs through [context.Context] values
// stuffed by the cli package after flag parsing: the parsed [kong.Context],
// the deduplicated source file readers, and the bindings file path.
package cmd
