// Package validation checks raw tool-call arguments against a capability
// descriptor and normalizes them into canonical Go values.
//
// JSON transports hand every number over as float64 and arrays as []any, so
// the checks here double as coercion: a validated argument set carries only
// string, int, bool and []string values, and adapters downstream read them
// without further type juggling.
package validation

import (
	"fmt"
	"math"
	"strings"

	"mcp-tavily/internal/capability"
	"mcp-tavily/pkg/logging"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingRequired Kind = "missing_required"
	KindTypeMismatch    Kind = "type_mismatch"
	KindOutOfRange      Kind = "out_of_range"
	KindNotInEnum       Kind = "not_in_enum"
	KindTooManyItems    Kind = "too_many_items"
)

// Error describes the first parameter check that failed. Param names the
// offending parameter and Detail carries the human-readable reason.
type Error struct {
	Param  string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Detail)
}

// Args holds arguments that passed validation, keyed by parameter name.
// Values are canonical: string, int, bool or []string. Optional parameters
// without a declared default are simply absent.
type Args map[string]any

// Has reports whether the named argument is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named string argument, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the named integer argument, or 0 when absent.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Bool returns the named boolean argument, or false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// StringSlice returns the named array argument, or nil when absent.
func (a Args) StringSlice(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Normalize walks the descriptor's parameters in declaration order and checks
// each against the raw arguments. The first failing check wins, which keeps
// error output deterministic for any given call. Keys in raw that the
// descriptor does not declare are ignored. Absent optional parameters pick up
// their declared default, or stay absent when none is declared.
func Normalize(desc capability.Descriptor, raw map[string]any) (Args, *Error) {
	args := make(Args, len(desc.Parameters))

	for _, p := range desc.Parameters {
		value, present := raw[p.Name]
		if !present {
			if p.Required {
				return nil, fail(p.Name, KindMissingRequired, "required parameter is missing")
			}
			if p.Default != nil {
				args[p.Name] = p.Default
			}
			continue
		}

		normalized, err := checkValue(p, value)
		if err != nil {
			logging.Debug("Validation", "Rejected %s for %q: %s", err.Kind, desc.Name, err.Detail)
			return nil, err
		}
		args[p.Name] = normalized
	}

	return args, nil
}

func checkValue(p capability.ParameterSpec, value any) (any, *Error) {
	switch p.Type {
	case capability.TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, fail(p.Name, KindTypeMismatch, "must be a string")
		}
		if len(p.Enum) > 0 && !containsString(p.Enum, s) {
			return nil, fail(p.Name, KindNotInEnum, "must be one of: %s", strings.Join(p.Enum, ", "))
		}
		return s, nil

	case capability.TypeInteger:
		n, ok := toInt(value)
		if !ok {
			return nil, fail(p.Name, KindTypeMismatch, "must be an integer")
		}
		if p.Minimum != nil && n < *p.Minimum {
			return nil, fail(p.Name, KindOutOfRange, "must be at least %d", *p.Minimum)
		}
		if p.Maximum != nil && n > *p.Maximum {
			return nil, fail(p.Name, KindOutOfRange, "must be at most %d", *p.Maximum)
		}
		return n, nil

	case capability.TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fail(p.Name, KindTypeMismatch, "must be a boolean")
		}
		return b, nil

	case capability.TypeStringArray:
		items, ok := toStringSlice(value)
		if !ok {
			return nil, fail(p.Name, KindTypeMismatch, "must be an array of strings")
		}
		if p.MaxItems > 0 && len(items) > p.MaxItems {
			return nil, fail(p.Name, KindTooManyItems, "must contain at most %d items", p.MaxItems)
		}
		return items, nil

	default:
		return nil, fail(p.Name, KindTypeMismatch, "has unsupported type %q", p.Type)
	}
}

func fail(param string, kind Kind, format string, args ...any) *Error {
	return &Error{Param: param, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// toInt accepts the integer encodings a JSON transport can produce. A
// float64 only passes when it carries an integral value.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

// toStringSlice accepts []string directly and []any when every element is a
// string. The result is always a fresh slice so callers cannot alias the raw
// arguments.
func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func containsString(set []string, s string) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}
