package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func loadConfig(t *testing.T, source string) kong.Resolver {
	t.Helper()

	resolver, err := resolve(baseConfig)(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolver error: %v", err)
	}

	return resolver
}

func lookupFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	value, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("resolve %q: %v", name, err)
	}

	return value
}

func TestResolve_FlagLookup(t *testing.T) {
	r := loadConfig(t, `
config:
  log-level: debug
  log_format: json
  log-pretty: true
  port: 8080
`)

	if got := lookupFlag(t, r, "log-level"); got != "debug" {
		t.Errorf("log-level = %v, want debug", got)
	}

	// Hyphenated flag names also match underscore keys.
	if got := lookupFlag(t, r, "log-format"); got != "json" {
		t.Errorf("log-format = %v, want json", got)
	}

	if got := lookupFlag(t, r, "log-pretty"); got != true {
		t.Errorf("log-pretty = %v, want true", got)
	}

	// Numbers are normalized to strings for Kong.
	if got := lookupFlag(t, r, "port"); got != "8080" {
		t.Errorf("port = %v (%T), want \"8080\"", got, got)
	}

	// Unknown flags resolve to nil so Kong falls back to defaults.
	if got := lookupFlag(t, r, "absent"); got != nil {
		t.Errorf("absent = %v, want nil", got)
	}
}

func TestResolve_MissingSection(t *testing.T) {
	r := loadConfig(t, "other:\n  key: value\n")

	if got := lookupFlag(t, r, "key"); got != nil {
		t.Errorf("expected empty config for missing section, got %v", got)
	}
}

func TestResolve_MalformedInput(t *testing.T) {
	r := loadConfig(t, ":::not yaml{{{")

	if got := lookupFlag(t, r, "log-level"); got != nil {
		t.Errorf("expected empty config for malformed input, got %v", got)
	}
}
