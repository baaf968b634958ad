package lang

import (
	"context"
	"log/slog"
	"sort"
)

// Processor is the host-supplied implementation of a native function.
// The context is the only suspension point in an evaluation: a processor
// may block (or await host-side work) and the interpreter waits for its
// completion before evaluating the next argument or statement.
type Processor func(ctx context.Context, args []Value) (any, error)

// NativeFunction binds a name to a host processor. Records are owned by the
// symbol table for the lifetime of the evaluation context.
type NativeFunction struct {
	Name      string
	Processor Processor
}

// Variable binds a name to a value. Records are owned by the symbol table
// for the lifetime of the evaluation context.
type Variable struct {
	Name  string
	Value Value
}

// SymbolTable is the flat global registry of native functions and variables
// consulted during interpretation. It is created once per evaluation
// context, populated by the host before any Evaluate call, and read-only
// while a program runs. It carries no locks: hosts serialize mutation and
// evaluation (see Context).
type SymbolTable struct {
	funcs map[string]*NativeFunction
	vars  []*Variable
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		funcs: make(map[string]*NativeFunction),
	}
}

// PutFunction registers a native function, overwriting any existing
// function with the same name.
func (t *SymbolTable) PutFunction(fn *NativeFunction) {
	if fn == nil || fn.Name == "" {
		return
	}

	t.funcs[fn.Name] = fn
}

// GetFunction looks up a native function by name.
func (t *SymbolTable) GetFunction(name string) (*NativeFunction, bool) {
	fn, ok := t.funcs[name]

	return fn, ok
}

// PutVariable registers a variable record.
//
// Duplicate detection is by record identity, not by name: inserting the
// identical record twice fails with ErrDuplicateVariable, while two distinct
// records sharing a name both succeed and the earlier one shadows the later
// in lookups. The name collision is deliberately left undetected; see the
// pinned-quirk tests before changing this.
func (t *SymbolTable) PutVariable(v *Variable) error {
	if v == nil {
		return nil
	}

	for _, rec := range t.vars {
		if rec == v {
			return ErrDuplicateVariable.
				With(slog.String("name", v.Name))
		}
	}

	t.vars = append(t.vars, v)

	return nil
}

// GetVariable looks up a variable by name: a linear scan in insertion order
// returning the first match.
func (t *SymbolTable) GetVariable(name string) (*Variable, bool) {
	for _, rec := range t.vars {
		if rec.Name == name {
			return rec, true
		}
	}

	return nil, false
}

// UpdateVariable replaces the value of the first record registered under
// name. It fails with ErrUnknownVariable when no PutVariable call ever
// registered that name.
func (t *SymbolTable) UpdateVariable(name string, value Value) error {
	rec, ok := t.GetVariable(name)
	if !ok {
		return ErrUnknownVariable.
			With(slog.String("name", name))
	}

	rec.Value = value

	return nil
}

// FunctionNames returns the registered function names in sorted order.
func (t *SymbolTable) FunctionNames() []string {
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// VariableNames returns the registered variable names in insertion order,
// including shadowed duplicates.
func (t *SymbolTable) VariableNames() []string {
	names := make([]string, 0, len(t.vars))
	for _, rec := range t.vars {
		names = append(names, rec.Name)
	}

	return names
}
