package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/gyeoplang/gyeop/log"
)

// Context is the host-facing evaluation context: a fresh symbol table plus
// the pipeline that runs programs against it.
//
// The symbol table is mutable shared state: hosts register bindings between
// Evaluate calls, never during one. Concurrent Evaluate calls against the
// same Context are not supported and must be serialized by the host.
type Context struct {
	table *SymbolTable
	log   log.Logger
}

// Option applies a configuration option to a Context.
type Option func(*Context)

// WithLogger sets the logger used by the pipeline. The zero logger (the
// default) discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Context) {
		c.log = logger
	}
}

// NewContext allocates an evaluation context with an empty symbol table.
func NewContext(opts ...Option) *Context {
	c := &Context{table: NewSymbolTable()}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Bindings returns the symbol table for host registration of native
// functions and variables.
func (c *Context) Bindings() *SymbolTable {
	return c.table
}

// Evaluate runs the full Lex → Parse → Interpret pipeline over source,
// propagating the first error encountered from any stage. Lexing, parsing,
// and interpretation are strictly sequential; the only suspension points
// are inside native-function processors.
func (c *Context) Evaluate(ctx context.Context, source string) error {
	tokens, err := Lex(source)
	if err != nil {
		return err
	}

	c.log.DebugContext(ctx, "lexed source",
		slog.Int("tokens", len(tokens)),
	)

	program, err := Parse(tokens)
	if err != nil {
		return err
	}

	c.log.DebugContext(ctx, "parsed program",
		slog.Int("statements", len(program.Statements)),
	)

	return interpret(ctx, program, c.table, c.log)
}

// EvaluateReader reads all of r and evaluates it as one program.
func (c *Context) EvaluateReader(ctx context.Context, r io.Reader) error {
	source, err := io.ReadAll(r)
	if err != nil {
		return WrapError(err)
	}

	return c.Evaluate(ctx, string(source))
}
