package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gyeoplang/gyeop/builtin"
	"github.com/gyeoplang/gyeop/lang"
	"github.com/gyeoplang/gyeop/log"
)

// Eval evaluates a gyeop program. The program may be given inline as
// positional arguments, via --source files, or on stdin.
type Eval struct {
	Program []string `arg:"" help:"Program text to evaluate" name:"program" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	reader, err := programReader(ctx, e.Program)
	if err != nil {
		return err
	}

	eval := lang.NewContext(lang.WithLogger(log.Default()))

	builtin.Register(eval.Bindings(), os.Stdout)

	err = applyBindingsFile(ctx, eval.Bindings())
	if err != nil {
		return err
	}

	err = eval.EvaluateReader(ctx, reader)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "eval"))
	}

	return nil
}

// programReader selects the program source: inline arguments win, then any
// --source files stuffed into ctx, then stdin when it is not a terminal.
func programReader(
	ctx context.Context,
	inline []string,
) (io.Reader, error) {
	if len(inline) > 0 {
		return strings.NewReader(strings.Join(inline, " ")), nil
	}

	if srcs := sourceFilesFrom(ctx); srcs != nil {
		return srcs, nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		return os.Stdin, nil
	}

	return nil, ErrNoSource
}

// applyBindingsFile loads the YAML bindings file stuffed into ctx, if any,
// and registers each entry as a variable.
func applyBindingsFile(
	ctx context.Context,
	table *lang.SymbolTable,
) error {
	path := bindingsFileFrom(ctx)
	if path == "" {
		return nil
	}

	vars, err := LoadBindings(path)
	if err != nil {
		return err
	}

	for _, rec := range vars {
		err := table.PutVariable(rec)
		if err != nil {
			return ErrRegisterBinding.Wrap(err).
				With(slog.String("name", rec.Name))
		}
	}

	log.DebugContext(ctx, "bindings loaded",
		slog.String("path", path),
		slog.Int("count", len(vars)),
	)

	return nil
}
