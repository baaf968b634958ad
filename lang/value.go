package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ValueKind indicates which variant a Value holds.
type ValueKind int

const (
	// ValueString holds literal text that did not parse as a number.
	ValueString ValueKind = iota

	// ValueNumber holds a float64.
	ValueNumber

	// ValueBool holds a boolean.
	ValueBool

	// ValueArray holds an ordered sequence of values.
	ValueArray

	// ValueBlock holds a block descriptor: the name of a referenced
	// variable.
	ValueBlock
)

// String returns a string representation of the value kind.
func (vk ValueKind) String() string {
	switch vk {
	case ValueString:
		return "String"
	case ValueNumber:
		return "Number"
	case ValueBool:
		return "Bool"
	case ValueArray:
		return "Array"
	case ValueBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Value is a dynamically-typed wrapper around exactly one of: string,
// number, boolean, ordered sequence, or block descriptor. Typed accessors
// fail with ErrTypeMismatch when the stored kind does not match.
type Value struct {
	Kind ValueKind
	// Exactly one of these is meaningful, selected by Kind.
	Str  string
	Num  float64
	Bool bool
	Arr  []Value
}

// StringVal wraps a string.
func StringVal(s string) Value { return Value{Kind: ValueString, Str: s} }

// NumberVal wraps a number.
func NumberVal(f float64) Value { return Value{Kind: ValueNumber, Num: f} }

// BoolVal wraps a boolean.
func BoolVal(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// ArrayVal wraps an ordered sequence.
func ArrayVal(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}

	return Value{Kind: ValueArray, Arr: elems}
}

// BlockVal wraps a block descriptor referencing the named variable.
func BlockVal(name string) Value { return Value{Kind: ValueBlock, Str: name} }

// mismatch builds the typed-access failure for a want/have kind pair.
func (v Value) mismatch(want ValueKind) error {
	return ErrTypeMismatch.With(
		slog.String("want", want.String()),
		slog.String("have", v.Kind.String()),
	)
}

// AsString returns the stored string.
func (v Value) AsString() (string, error) {
	if v.Kind != ValueString {
		return "", v.mismatch(ValueString)
	}

	return v.Str, nil
}

// AsNumber returns the stored number.
func (v Value) AsNumber() (float64, error) {
	if v.Kind != ValueNumber {
		return 0, v.mismatch(ValueNumber)
	}

	return v.Num, nil
}

// AsBool returns the stored boolean.
func (v Value) AsBool() (bool, error) {
	if v.Kind != ValueBool {
		return false, v.mismatch(ValueBool)
	}

	return v.Bool, nil
}

// AsArray returns the stored sequence.
func (v Value) AsArray() ([]Value, error) {
	if v.Kind != ValueArray {
		return nil, v.mismatch(ValueArray)
	}

	return v.Arr, nil
}

// AsBlock returns the stored block descriptor (the referenced variable
// name).
func (v Value) AsBlock() (string, error) {
	if v.Kind != ValueBlock {
		return "", v.mismatch(ValueBlock)
	}

	return v.Str, nil
}

// AsAny returns the underlying Go value regardless of kind. It always
// succeeds.
func (v Value) AsAny() any {
	switch v.Kind {
	case ValueNumber:
		return v.Num
	case ValueBool:
		return v.Bool
	case ValueArray:
		return v.Arr
	default:
		return v.Str
	}
}

// String renders the value for host-visible output.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueArray:
		parts := make([]string, len(v.Arr))
		for i, e := range v.Arr {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, " ") + "]"
	case ValueBlock:
		return "[[" + v.Str + "]]"
	default:
		return v.Str
	}
}

// Coerce applies the numeric-literal rule to textual input: leading and
// trailing whitespace is ignored, an empty or whitespace-only string is the
// number zero, and anything that parses as a decimal or exponential number
// wraps as a number. Everything else wraps as a string holding the original
// text.
func Coerce(text string) Value {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NumberVal(0)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberVal(f)
	}

	return StringVal(text)
}

// CoerceResult applies the numeric-literal rule to the raw result of a
// nested call. Already-numeric results stay numeric, textual results pass
// through Coerce, and typed results (booleans, sequences, Values) are
// wrapped as-is.
func CoerceResult(result any) Value {
	switch r := result.(type) {
	case nil:
		return Coerce("")

	case Value:
		if r.Kind == ValueString {
			return Coerce(r.Str)
		}

		return r

	case float64:
		return NumberVal(r)

	case float32:
		return NumberVal(float64(r))

	case int:
		return NumberVal(float64(r))

	case int64:
		return NumberVal(float64(r))

	case uint:
		return NumberVal(float64(r))

	case uint64:
		return NumberVal(float64(r))

	case string:
		return Coerce(r)

	case bool:
		return BoolVal(r)

	case []Value:
		return ArrayVal(r)

	case []any:
		elems := make([]Value, len(r))
		for i, e := range r {
			elems[i] = CoerceResult(e)
		}

		return ArrayVal(elems)

	default:
		return Coerce(fmt.Sprint(r))
	}
}
