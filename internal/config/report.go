package config

import "fmt"

// ConfigError reports an invalid run parameter. It is terminal for the
// current invocation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }

// Report is the immutable parameter set for one report run.
type Report struct {
	Separator       rune
	Encoding        string
	OutDir          string
	MaxHistColumns  int
	TopKCategories  int
	Title           string
	MinMissingShare float64
}

// Validate checks the run parameters before any work starts.
func (r Report) Validate() error {
	if r.OutDir == "" {
		return &ConfigError{Field: "out-dir", Reason: "must not be empty"}
	}
	if r.MaxHistColumns <= 0 {
		return &ConfigError{Field: "max-hist-columns", Reason: "must be positive"}
	}
	if r.TopKCategories <= 0 {
		return &ConfigError{Field: "top-k-categories", Reason: "must be positive"}
	}
	if r.MinMissingShare < 0 || r.MinMissingShare > 1 {
		return &ConfigError{Field: "min-missing-share", Reason: "must be within [0, 1]"}
	}
	return nil
}

// ParseSeparator maps a CLI separator value to a rune. "tab" and "\t" both
// mean tab; any other single character passes through.
func ParseSeparator(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	}
	r := []rune(s)
	if len(r) == 1 {
		return r[0], nil
	}
	return 0, &ConfigError{Field: "sep", Reason: fmt.Sprintf("must be a single character, got %q", s)}
}
