package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"mcp-tavily/internal/capability"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// RenderCapabilities writes the capability listing in the requested format.
func RenderCapabilities(w io.Writer, format OutputFormat, descriptors []capability.Descriptor) error {
	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode capabilities as JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil

	case OutputFormatYAML:
		data, err := yaml.Marshal(descriptors)
		if err != nil {
			return fmt.Errorf("failed to encode capabilities as YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil

	case OutputFormatTable:
		renderCapabilityTable(w, descriptors)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderCapabilityTable(w io.Writer, descriptors []capability.Descriptor) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, 0, 3)
	for _, col := range []string{"name", "description", "parameters"} {
		headers = append(headers, text.FgHiCyan.Sprint(strings.ToUpper(col)))
	}
	t.AppendHeader(headers)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 60},
		{Number: 3, WidthMax: 40},
	})

	for _, d := range descriptors {
		t.AppendRow(table.Row{d.Name, d.Description, parameterSummary(d)})
	}
	t.Render()
}

// parameterSummary compacts a parameter list into comma-separated names,
// with required parameters marked by an asterisk.
func parameterSummary(d capability.Descriptor) string {
	parts := make([]string, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		name := p.Name
		if p.Required {
			name += "*"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}
