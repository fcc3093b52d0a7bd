package capability

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool converts the descriptor into an MCP tool declaration, so the wire
// schema advertised on tools/list is derived from the same definition the
// validator enforces.
func (d Descriptor) MCPTool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, p := range d.Parameters {
		opts = append(opts, p.toolOption())
	}
	return mcp.NewTool(d.Name, opts...)
}

func (p ParameterSpec) toolOption() mcp.ToolOption {
	var props []mcp.PropertyOption
	if p.Required {
		props = append(props, mcp.Required())
	}
	if p.Description != "" {
		props = append(props, mcp.Description(p.Description))
	}

	switch p.Type {
	case TypeInteger:
		if def, ok := p.Default.(int); ok {
			props = append(props, mcp.DefaultNumber(float64(def)))
		}
		if p.Minimum != nil {
			props = append(props, mcp.Min(float64(*p.Minimum)))
		}
		if p.Maximum != nil {
			props = append(props, mcp.Max(float64(*p.Maximum)))
		}
		return mcp.WithNumber(p.Name, props...)

	case TypeBoolean:
		if def, ok := p.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(p.Name, props...)

	case TypeStringArray:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		if p.MaxItems > 0 {
			props = append(props, mcp.MaxItems(p.MaxItems))
		}
		return mcp.WithArray(p.Name, props...)

	default: // TypeString
		if def, ok := p.Default.(string); ok {
			props = append(props, mcp.DefaultString(def))
		}
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		return mcp.WithString(p.Name, props...)
	}
}
