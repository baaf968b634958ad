package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that parses YAML config
// files. Flag values are read from a mapping under the given top-level key.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Flag names with hyphens (e.g., "log-level") may use either hyphens or
// underscores in the config file. Example config file:
//
//	config:
//	  log-level: debug
//	  log-format: json
//	  log-pretty: true
//
// Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var root map[string]any

		err := yaml.NewDecoder(r).Decode(&root)
		if err != nil {
			// Unreadable config - return empty config
			return config{}, nil
		}

		section, ok := root[name].(map[string]any)
		if !ok {
			// Section not found or not a mapping - return empty config
			return config{}, nil
		}

		return config(normalize(section)), nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// normalize converts decoded YAML values to the representation Kong expects.
func normalize(section map[string]any) map[string]any {
	result := make(map[string]any, len(section))

	for key, value := range section {
		// Kong requires numbers as strings for parsing
		switch num := value.(type) {
		case int:
			result[key] = strconv.Itoa(num)
		case int64:
			result[key] = strconv.FormatInt(num, 10)
		case uint64:
			result[key] = strconv.FormatUint(num, 10)
		case float64:
			result[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			result[key] = value
		}
	}

	return result
}
