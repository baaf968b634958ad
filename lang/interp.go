package lang

import (
	"context"
	"log/slog"

	"github.com/gyeoplang/gyeop/log"
)

// Interpret walks the program sequentially, executing only Function
// statements at the top level. Block, Identifier, and Value statements are
// skipped with no error and no effect. The first error from any call aborts
// the walk.
func Interpret(ctx context.Context, program *AST, table *SymbolTable) error {
	return interpret(ctx, program, table, log.Logger{})
}

// interpret runs the walk with the given logger. A zero logger is a no-op.
func interpret(
	ctx context.Context,
	program *AST,
	table *SymbolTable,
	logger log.Logger,
) error {
	in := &interp{table: table, log: logger}

	for i, stmt := range program.Statements {
		if stmt.Type != NodeFunction {
			in.log.DebugContext(ctx, "skipping non-call statement",
				slog.Int("statement", i),
				slog.String("type", stmt.Type.String()),
				slog.String("text", stmt.Text),
			)

			continue
		}

		// The call's own return value is discarded at the top level;
		// host-visible effects happen inside the processor.
		if _, err := in.evalCall(ctx, stmt); err != nil {
			return WrapError(err).
				With(slog.Int("statement", i))
		}
	}

	return nil
}

// interp holds the walk state for one Interpret call.
type interp struct {
	table *SymbolTable
	log   log.Logger
}

// evalCall resolves and invokes one Function node, returning the
// processor's raw result for use by an enclosing call.
func (in *interp) evalCall(ctx context.Context, node *Node) (any, error) {
	fn, ok := in.table.GetFunction(node.Text)
	if !ok {
		return nil, ErrUndefinedFunction.
			With(slog.String("name", node.Text))
	}

	// Arguments are evaluated strictly left to right: later arguments may
	// depend on side effects of earlier ones through nested calls or
	// shared variable state.
	args := make([]Value, 0, len(node.Args))

	for _, arg := range node.Args {
		val, err := in.evalArg(ctx, arg)
		if err != nil {
			return nil, err
		}

		args = append(args, val)
	}

	in.log.DebugContext(ctx, "invoking native function",
		slog.String("name", fn.Name),
		slog.Int("args", len(args)),
	)

	return fn.Processor(ctx, args)
}

// evalArg evaluates a single argument node to a Value.
func (in *interp) evalArg(ctx context.Context, arg *Node) (Value, error) {
	switch arg.Type {
	case NodeValue:
		return Coerce(arg.Text), nil

	case NodeFunction:
		raw, err := in.evalCall(ctx, arg)
		if err != nil {
			return Value{}, err
		}

		return CoerceResult(raw), nil

	case NodeBlock:
		rec, ok := in.table.GetVariable(arg.Text)
		if !ok {
			return Value{}, ErrUndefinedVariable.
				With(slog.String("name", arg.Text))
		}

		// Stored values are used verbatim, with no coercion.
		return rec.Value, nil

	default:
		return Value{}, ErrUnsupportedArgument.
			With(
				slog.String("type", arg.Type.String()),
				slog.String("text", arg.Text),
			)
	}
}
