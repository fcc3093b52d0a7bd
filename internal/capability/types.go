package capability

// ParamType enumerates the argument types a capability schema can declare.
type ParamType string

const (
	TypeString      ParamType = "string"
	TypeInteger     ParamType = "integer"
	TypeBoolean     ParamType = "boolean"
	TypeStringArray ParamType = "array"
)

// ParameterSpec describes one accepted argument of a capability.
//
// Invariants (enforced by NewRegistry): a required parameter must not declare
// a default, and a declared default must match Type. Minimum/Maximum apply to
// integer parameters only, MaxItems to array parameters only; zero MaxItems
// means unbounded.
type ParameterSpec struct {
	Name        string    `json:"name" yaml:"name"`
	Type        ParamType `json:"type" yaml:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Minimum     *int      `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *int      `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	MaxItems    int       `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
}

// Descriptor is the declarative schema of one capability. Parameters keep
// declaration order; that order drives both tool listing and validation.
type Descriptor struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Parameters  []ParameterSpec `json:"parameters" yaml:"parameters"`
}

// Param returns the named parameter spec, if declared.
func (d Descriptor) Param(name string) (ParameterSpec, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// IntPtr is a convenience for declaring Minimum/Maximum bounds inline.
func IntPtr(v int) *int {
	return &v
}
