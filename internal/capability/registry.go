package capability

import (
	"fmt"

	"mcp-tavily/pkg/logging"
)

// Registry holds the declared capabilities in declaration order. It is
// immutable after construction, so concurrent readers need no locking.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// NewRegistry builds a registry from the given descriptors. It rejects
// duplicate capability names and parameter specs that break the schema
// invariants, so a malformed declaration fails at startup instead of at
// dispatch time.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Descriptor, len(descriptors)),
	}

	for _, desc := range descriptors {
		if desc.Name == "" {
			return nil, fmt.Errorf("capability with empty name")
		}
		if _, exists := r.byName[desc.Name]; exists {
			return nil, fmt.Errorf("capability %q declared twice", desc.Name)
		}
		if err := validateParameters(desc); err != nil {
			return nil, fmt.Errorf("capability %q: %w", desc.Name, err)
		}
		r.byName[desc.Name] = desc
		r.order = append(r.order, desc.Name)
	}

	logging.Debug("Registry", "Registered %d capabilities", len(r.order))
	return r, nil
}

// List returns the descriptors in declaration order. The result is a fresh
// slice on every call, so callers cannot disturb the registry.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Get returns the descriptor for name, if registered.
func (r *Registry) Get(name string) (Descriptor, bool) {
	desc, ok := r.byName[name]
	return desc, ok
}

// Names returns the capability names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.order)
}

func validateParameters(desc Descriptor) error {
	seen := make(map[string]bool, len(desc.Parameters))
	for _, p := range desc.Parameters {
		if p.Name == "" {
			return fmt.Errorf("parameter with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("parameter %q declared twice", p.Name)
		}
		seen[p.Name] = true

		switch p.Type {
		case TypeString, TypeInteger, TypeBoolean, TypeStringArray:
		default:
			return fmt.Errorf("parameter %q: unsupported type %q", p.Name, p.Type)
		}

		if p.Required && p.Default != nil {
			return fmt.Errorf("parameter %q: required parameters must not declare a default", p.Name)
		}
		if p.Default != nil && !defaultMatchesType(p.Default, p.Type) {
			return fmt.Errorf("parameter %q: default %v does not match type %s", p.Name, p.Default, p.Type)
		}
		if (p.Minimum != nil || p.Maximum != nil) && p.Type != TypeInteger {
			return fmt.Errorf("parameter %q: bounds are only valid on integer parameters", p.Name)
		}
		if p.Minimum != nil && p.Maximum != nil && *p.Minimum > *p.Maximum {
			return fmt.Errorf("parameter %q: minimum %d exceeds maximum %d", p.Name, *p.Minimum, *p.Maximum)
		}
		if p.MaxItems > 0 && p.Type != TypeStringArray {
			return fmt.Errorf("parameter %q: maxItems is only valid on array parameters", p.Name)
		}
		if len(p.Enum) > 0 && p.Type != TypeString {
			return fmt.Errorf("parameter %q: enums are only valid on string parameters", p.Name)
		}
	}
	return nil
}

func defaultMatchesType(def any, t ParamType) bool {
	switch t {
	case TypeString:
		_, ok := def.(string)
		return ok
	case TypeInteger:
		_, ok := def.(int)
		return ok
	case TypeBoolean:
		_, ok := def.(bool)
		return ok
	case TypeStringArray:
		_, ok := def.([]string)
		return ok
	default:
		return false
	}
}
