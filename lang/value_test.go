package lang

import (
	"errors"
	"reflect"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Value
		literal string // original text preserved for string results
	}{
		{name: "integer", input: "12", want: NumberVal(12)},
		{name: "decimal", input: "3.14", want: NumberVal(3.14)},
		{name: "negative", input: "-7", want: NumberVal(-7)},
		{name: "exponent", input: "1e2", want: NumberVal(100)},
		{name: "empty is zero", input: "", want: NumberVal(0)},
		{name: "whitespace only is zero", input: "  \t", want: NumberVal(0)},
		{name: "padded number", input: " 7 ", want: NumberVal(7)},
		{name: "text", input: "abc", want: StringVal("abc")},
		{name: "hangul", input: "값", want: StringVal("값")},
		{
			name:  "padded text keeps original",
			input: " abc ",
			want:  StringVal(" abc "),
		},
		{
			name:  "mixed digits and letters stay text",
			input: "12ab",
			want:  StringVal("12ab"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce(%q) = %+v, want %+v",
					tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceResult(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Value
	}{
		{name: "nil is zero", input: nil, want: NumberVal(0)},
		{name: "float64 stays numeric", input: 6.0, want: NumberVal(6)},
		{name: "int becomes numeric", input: 42, want: NumberVal(42)},
		{name: "numeric text", input: "12", want: NumberVal(12)},
		{name: "plain text", input: "끝", want: StringVal("끝")},
		{name: "bool passes through", input: true, want: BoolVal(true)},
		{
			name:  "string Value re-coerces",
			input: StringVal("5"),
			want:  NumberVal(5),
		},
		{
			name:  "number Value passes through",
			input: NumberVal(5),
			want:  NumberVal(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceResult(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CoerceResult(%v) = %+v, want %+v",
					tt.input, got, tt.want)
			}
		})
	}

	t.Run("any slice becomes array", func(t *testing.T) {
		got := CoerceResult([]any{"1", "x"})

		arr, err := got.AsArray()
		if err != nil {
			t.Fatalf("AsArray: %v", err)
		}

		want := []Value{NumberVal(1), StringVal("x")}
		if !reflect.DeepEqual(arr, want) {
			t.Errorf("unexpected array: %v", arr)
		}
	})
}

func TestValue_AccessorMismatch(t *testing.T) {
	v := StringVal("x")

	if _, err := v.AsNumber(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsNumber on string: expected ErrTypeMismatch, got %v", err)
	}

	if _, err := v.AsBool(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsBool on string: expected ErrTypeMismatch, got %v", err)
	}

	if _, err := NumberVal(1).AsString(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsString on number: expected ErrTypeMismatch, got %v", err)
	}

	if _, err := v.AsArray(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsArray on string: expected ErrTypeMismatch, got %v", err)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  string
	}{
		{name: "number", input: NumberVal(6), want: "6"},
		{name: "fraction", input: NumberVal(2.5), want: "2.5"},
		{name: "text", input: StringVal("안녕"), want: "안녕"},
		{name: "bool", input: BoolVal(true), want: "true"},
		{
			name:  "array",
			input: ArrayVal([]Value{NumberVal(1), StringVal("x")}),
			want:  "[1 x]",
		},
		{name: "block", input: BlockVal("넓이"), want: "[[넓이]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
