// Package builtin registers the sample native functions the gyeop CLI
// exposes to programs. Hosts embedding the interpreter typically register
// their own natives instead; this package doubles as a reference for how
// bindings are written.
package builtin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/mung"
	"github.com/expr-lang/expr"

	"github.com/gyeoplang/gyeop/lang"
)

// Register installs every builtin into the table. Output-producing builtins
// write to w. Functions registered under an ASCII name also get a Hangul
// alias, matching the language's native script.
func Register(table *lang.SymbolTable, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	register(table, printFunc(w), "print", "출력")
	register(table, sumFunc, "sum", "더하기")
	register(table, joinFunc, "join", "잇기")
	register(table, calcFunc(table), "calc", "계산")
	register(table, setFunc(table), "set", "지정")
	register(table, pathFunc, "path")
}

// register installs one processor under each of the given names.
func register(table *lang.SymbolTable, p lang.Processor, names ...string) {
	for _, name := range names {
		table.PutFunction(&lang.NativeFunction{
			Name:      name,
			Processor: p,
		})
	}
}

// printFunc writes its arguments space-separated on one line and returns
// nothing.
func printFunc(w io.Writer) lang.Processor {
	return func(_ context.Context, args []lang.Value) (any, error) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}

		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		if err != nil {
			return nil, lang.WrapError(err)
		}

		return nil, nil
	}
}

// sumFunc reduces its numeric arguments by addition. A non-numeric argument
// is a type mismatch.
func sumFunc(_ context.Context, args []lang.Value) (any, error) {
	var total float64

	for i, arg := range args {
		n, err := arg.AsNumber()
		if err != nil {
			return nil, lang.WrapError(err).
				With(slog.Int("argument", i))
		}

		total += n
	}

	return total, nil
}

// joinFunc concatenates the rendered form of every argument.
func joinFunc(_ context.Context, args []lang.Value) (any, error) {
	var b strings.Builder

	for _, arg := range args {
		b.WriteString(arg.String())
	}

	return b.String(), nil
}

// calcFunc evaluates its single argument as an expr-lang expression. The
// expression environment exposes every variable currently registered in the
// table, so [[계산|넓이]] style references work once the host binds 넓이.
func calcFunc(table *lang.SymbolTable) lang.Processor {
	return func(_ context.Context, args []lang.Value) (any, error) {
		if len(args) != 1 {
			return nil, lang.ErrUnsupportedArgument.
				With(slog.Int("args", len(args)))
		}

		env := make(map[string]any)

		for _, name := range table.VariableNames() {
			if rec, ok := table.GetVariable(name); ok {
				env[name] = rec.Value.AsAny()
			}
		}

		result, err := expr.Eval(args[0].String(), env)
		if err != nil {
			return nil, lang.WrapError(err).
				With(slog.String("expression", args[0].String()))
		}

		return result, nil
	}
}

// setFunc updates an existing variable: first argument is the name, second
// the new value. The variable must already be registered by the host.
func setFunc(table *lang.SymbolTable) lang.Processor {
	return func(_ context.Context, args []lang.Value) (any, error) {
		if len(args) != 2 {
			return nil, lang.ErrUnsupportedArgument.
				With(slog.Int("args", len(args)))
		}

		err := table.UpdateVariable(args[0].String(), args[1])
		if err != nil {
			return nil, err
		}

		return args[1], nil
	}
}

// pathFunc prefixes a PATH-like list (first argument) with the remaining
// arguments, deduplicated, using the platform list separator.
func pathFunc(_ context.Context, args []lang.Value) (any, error) {
	if len(args) == 0 {
		return "", nil
	}

	prefix := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		prefix = append(prefix, arg.String())
	}

	return mung.Make(
		mung.WithSubjectItems(args[0].String()),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String(), nil
}
