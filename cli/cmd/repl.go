package cmd

import (
	"context"
	"io"

	"github.com/gyeoplang/gyeop/builtin"
	"github.com/gyeoplang/gyeop/cli/cmd/repl"
	"github.com/gyeoplang/gyeop/lang"
	"github.com/gyeoplang/gyeop/log"
)

// Repl starts the interactive read-eval-print loop.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	bind := func(table *lang.SymbolTable, w io.Writer) error {
		builtin.Register(table, w)

		return applyBindingsFile(ctx, table)
	}

	return repl.Run(ctx, bind, log.Default())
}
