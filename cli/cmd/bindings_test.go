package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gyeoplang/gyeop/lang"
)

func writeBindings(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bindings.yaml")

	err := os.WriteFile(path, []byte(source), 0o600)
	if err != nil {
		t.Fatalf("write bindings: %v", err)
	}

	return path
}

func TestLoadBindings(t *testing.T) {
	path := writeBindings(t, `
이름: 전
넓이: 6
비율: 2.5
활성: true
목록:
  - 1
  - 가
`)

	vars, err := LoadBindings(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	// Records come back sorted by name.
	byName := make(map[string]lang.Value, len(vars))
	for i, rec := range vars {
		if i > 0 && vars[i-1].Name > rec.Name {
			t.Errorf("records not sorted: %q before %q",
				vars[i-1].Name, rec.Name)
		}

		byName[rec.Name] = rec.Value
	}

	checks := map[string]lang.Value{
		"이름": lang.StringVal("전"),
		"넓이": lang.NumberVal(6),
		"비율": lang.NumberVal(2.5),
		"활성": lang.BoolVal(true),
		"목록": lang.ArrayVal([]lang.Value{
			lang.NumberVal(1),
			lang.StringVal("가"),
		}),
	}

	for name, want := range checks {
		got, ok := byName[name]
		if !ok {
			t.Errorf("missing binding %q", name)

			continue
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("binding %q = %+v, want %+v", name, got, want)
		}
	}
}

func TestLoadBindings_StringsStayStrings(t *testing.T) {
	// A quoted numeric string must survive as a string: variables bypass
	// the numeric-literal rule.
	path := writeBindings(t, `값: "12"`)

	vars, err := LoadBindings(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if len(vars) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(vars))
	}

	want := lang.StringVal("12")
	if !reflect.DeepEqual(vars[0].Value, want) {
		t.Errorf("value = %+v, want %+v", vars[0].Value, want)
	}
}

func TestLoadBindings_NestedMappingRejected(t *testing.T) {
	path := writeBindings(t, `
중첩:
  하위: 값
`)

	_, err := LoadBindings(path)
	if !errors.Is(err, ErrBindingValue) {
		t.Errorf("expected ErrBindingValue, got %v", err)
	}
}

func TestLoadBindings_MissingFile(t *testing.T) {
	_, err := LoadBindings(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrLoadBindings) {
		t.Errorf("expected ErrLoadBindings, got %v", err)
	}
}
