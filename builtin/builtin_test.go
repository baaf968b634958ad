package builtin

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gyeoplang/gyeop/lang"
)

// harness builds an evaluation context with every builtin registered and
// output captured.
func harness(t *testing.T) (*lang.Context, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	eval := lang.NewContext()

	Register(eval.Bindings(), out)

	return eval, out
}

func TestRegister_Aliases(t *testing.T) {
	eval, _ := harness(t)

	table := eval.Bindings()

	for _, pair := range [][2]string{
		{"print", "출력"},
		{"sum", "더하기"},
		{"join", "잇기"},
		{"calc", "계산"},
		{"set", "지정"},
	} {
		for _, name := range pair {
			if _, ok := table.GetFunction(name); !ok {
				t.Errorf("missing builtin %q", name)
			}
		}
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "joins arguments with spaces",
			source: "[[출력|안녕|세계]]",
			want:   "안녕 세계\n",
		},
		{
			name:   "renders numbers without exponent",
			source: "[[print|12|3.5]]",
			want:   "12 3.5\n",
		},
		{
			name:   "zero arguments prints empty line",
			source: "[[출력|]]",
			want:   "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, out := harness(t)

			err := eval.Evaluate(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	eval, out := harness(t)

	err := eval.Evaluate(context.Background(), "[[출력|[[더하기|1|2|3]]]]")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got := out.String(); got != "6\n" {
		t.Errorf("output = %q, want %q", got, "6\n")
	}
}

func TestSum_TypeMismatch(t *testing.T) {
	eval, _ := harness(t)

	err := eval.Evaluate(context.Background(), "[[더하기|1|안녕]]")
	if !errors.Is(err, lang.ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestJoin(t *testing.T) {
	eval, out := harness(t)

	err := eval.Evaluate(context.Background(), "[[출력|[[잇기|가|1|나]]]]")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got := out.String(); got != "가1나\n" {
		t.Errorf("output = %q, want %q", got, "가1나\n")
	}
}

func TestCalc_VariableExpression(t *testing.T) {
	eval, out := harness(t)

	err := eval.Bindings().PutVariable(
		&lang.Variable{Name: "식", Value: lang.StringVal("1 + 2 * 3")},
	)
	if err != nil {
		t.Fatalf("put variable: %v", err)
	}

	err = eval.Evaluate(context.Background(), "[[출력|[[계산|[[식]]]]]]")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got := out.String(); got != "7\n" {
		t.Errorf("output = %q, want %q", got, "7\n")
	}
}

func TestCalc_SeesVariables(t *testing.T) {
	eval, out := harness(t)

	for _, rec := range []*lang.Variable{
		{Name: "넓이", Value: lang.NumberVal(6)},
		{Name: "식", Value: lang.StringVal("넓이 * 2")},
	} {
		if err := eval.Bindings().PutVariable(rec); err != nil {
			t.Fatalf("put variable: %v", err)
		}
	}

	err := eval.Evaluate(context.Background(), "[[출력|[[계산|[[식]]]]]]")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got := out.String(); got != "12\n" {
		t.Errorf("output = %q, want %q", got, "12\n")
	}
}

func TestCalc_ArgumentCount(t *testing.T) {
	eval, _ := harness(t)

	err := eval.Evaluate(context.Background(), "[[계산|1|2]]")
	if !errors.Is(err, lang.ErrUnsupportedArgument) {
		t.Errorf("expected ErrUnsupportedArgument, got %v", err)
	}
}

func TestSet(t *testing.T) {
	eval, _ := harness(t)

	rec := &lang.Variable{Name: "이름", Value: lang.StringVal("전")}
	if err := eval.Bindings().PutVariable(rec); err != nil {
		t.Fatalf("put variable: %v", err)
	}

	err := eval.Evaluate(context.Background(), "[[지정|이름|후]]")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	got, err := rec.Value.AsString()
	if err != nil || got != "후" {
		t.Errorf("expected updated value 후, got %q (%v)", got, err)
	}
}

func TestSet_UnknownVariable(t *testing.T) {
	eval, _ := harness(t)

	err := eval.Evaluate(context.Background(), "[[지정|없음|값]]")
	if !errors.Is(err, lang.ErrUnknownVariable) {
		t.Errorf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestPath(t *testing.T) {
	eval, _ := harness(t)

	fn, ok := eval.Bindings().GetFunction("path")
	if !ok {
		t.Fatal("missing builtin path")
	}

	raw, err := fn.Processor(context.Background(), []lang.Value{
		lang.StringVal("/usr/bin:/bin"),
		lang.StringVal("/opt/bin"),
	})
	if err != nil {
		t.Fatalf("path error: %v", err)
	}

	got, ok := raw.(string)
	if !ok {
		t.Fatalf("expected string result, got %T", raw)
	}

	if !strings.HasPrefix(got, "/opt/bin") {
		t.Errorf("expected prefixed list, got %q", got)
	}

	if !strings.Contains(got, "/usr/bin") || !strings.Contains(got, "/bin") {
		t.Errorf("expected original entries retained, got %q", got)
	}
}
