package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gyeoplang/gyeop/lang"
)

// Dump lexes and parses a program and prints its syntax tree without
// evaluating it.
type Dump struct {
	Program []string `arg:"" help:"Program text to parse" name:"program" optional:""`
	Tokens  bool     `       help:"Print the token stream instead of the tree" short:"t"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	reader, err := programReader(ctx, d.Program)
	if err != nil {
		return err
	}

	source, err := io.ReadAll(reader)
	if err != nil {
		return ErrReadSource.Wrap(err)
	}

	tokens, err := lang.Lex(string(source))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "dump"))
	}

	if d.Tokens {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}

		return nil
	}

	program, err := lang.Parse(tokens)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "dump"))
	}

	program.Print(os.Stdout)

	return nil
}
