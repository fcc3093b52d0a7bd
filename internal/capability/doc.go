// Package capability declares the tools exposed by the Tavily MCP server and
// the registry that serves their schemas.
//
// # Overview
//
// Every tool ("capability") is described by a Descriptor: a unique name, a
// human-readable description, and an ordered list of ParameterSpec entries.
// Declaration order is significant: it is the order tools are advertised in
// and the order the validator walks parameters in, so identical invalid input
// always reports the same first error.
//
// # Core Concepts
//
// ParameterSpec: one accepted argument, carrying its type (string, integer,
// boolean or array-of-string), whether it is required, an optional default,
// inclusive numeric bounds, an allowed-value set and an item-count cap for
// arrays.
//
// Descriptor: the full declarative schema of one capability.
//
// Registry: an immutable, ordered collection of Descriptors built once at
// startup. Construction fails on duplicate names and on specs that violate
// the schema invariants (a required parameter must not carry a default; a
// default must match its parameter's declared type).
//
// # Usage
//
//	reg, err := capability.NewDefaultRegistry()
//	if err != nil {
//	    return err
//	}
//	for _, desc := range reg.List() {
//	    fmt.Println(desc.Name)
//	}
//
// Descriptors convert to MCP tool declarations via MCPTool, so the wire
// schema is always derived from the same source of truth the validator uses.
package capability
