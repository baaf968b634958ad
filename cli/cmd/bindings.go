package cmd

import (
	"log/slog"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/gyeoplang/gyeop/lang"
)

// LoadBindings reads a YAML file of name/value pairs and converts each
// entry to a variable record. Values keep their YAML types: strings stay
// strings (no numeric coercion), numbers become numbers, booleans become
// booleans, and sequences become arrays. Nested mappings are rejected
// because the symbol table is flat.
//
// Records are returned sorted by name so registration order is stable.
func LoadBindings(path string) ([]*lang.Variable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrLoadBindings.Wrap(err).
			With(slog.String("path", path))
	}

	var entries map[string]any

	err = yaml.Unmarshal(data, &entries)
	if err != nil {
		return nil, ErrLoadBindings.Wrap(err).
			With(slog.String("path", path))
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	sort.Strings(names)

	vars := make([]*lang.Variable, 0, len(entries))

	for _, name := range names {
		value, err := bindingValue(entries[name])
		if err != nil {
			return nil, err
		}

		vars = append(vars, &lang.Variable{Name: name, Value: value})
	}

	return vars, nil
}

// bindingValue converts a decoded YAML value to a [lang.Value].
func bindingValue(raw any) (lang.Value, error) {
	switch v := raw.(type) {
	case nil:
		return lang.StringVal(""), nil
	case string:
		return lang.StringVal(v), nil
	case bool:
		return lang.BoolVal(v), nil
	case int:
		return lang.NumberVal(float64(v)), nil
	case int64:
		return lang.NumberVal(float64(v)), nil
	case uint64:
		return lang.NumberVal(float64(v)), nil
	case float64:
		return lang.NumberVal(v), nil
	case []any:
		items := make([]lang.Value, 0, len(v))

		for _, item := range v {
			value, err := bindingValue(item)
			if err != nil {
				return lang.Value{}, err
			}

			items = append(items, value)
		}

		return lang.ArrayVal(items), nil
	default:
		return lang.Value{}, ErrBindingValue.
			With(slog.String("type", typeName(raw)))
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	switch v.(type) {
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return "unknown"
	}
}
