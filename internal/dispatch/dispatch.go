// Package dispatch routes tool calls to the search backend.
//
// A call moves through three stages: name lookup in the binding table,
// argument validation against the capability descriptor, and the adapter
// invoking the backend. Every failure mode is rendered as response text with
// the error flag set; a Dispatch never returns a fault to the transport.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/tavily"
	"mcp-tavily/internal/validation"
	"mcp-tavily/pkg/logging"
)

// Backend is the search provider the adapters drive. *tavily.Client
// satisfies it; tests substitute counting doubles.
type Backend interface {
	Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error)
	Answer(ctx context.Context, query string) (string, error)
	SearchContext(ctx context.Context, query string, maxTokens int) (string, error)
	Extract(ctx context.Context, req tavily.ExtractRequest) (*tavily.ExtractResponse, error)
}

// Response is the outcome of a dispatched call. IsError mirrors the MCP
// result flag: failures are content for the model to read, not protocol
// faults.
type Response struct {
	Text    string
	IsError bool
}

type adapterFunc func(ctx context.Context, backend Backend, args validation.Args) (string, error)

type binding struct {
	descriptor capability.Descriptor
	failPrefix string
	call       adapterFunc
}

// adapterRows pairs each capability name with its failure prefix and adapter.
// Adding a capability means one row here plus its descriptor in
// capability.Definitions.
var adapterRows = map[string]struct {
	failPrefix string
	call       adapterFunc
}{
	capability.ToolSearch:         {"Search failed", searchAdapter},
	capability.ToolQNASearch:      {"Q&A search failed", qnaAdapter},
	capability.ToolGetContext:     {"Context retrieval failed", contextAdapter},
	capability.ToolExtractContent: {"Content extraction failed", extractAdapter},
}

// Dispatcher holds the immutable binding table. It carries no per-call
// state, so a single instance serves concurrent callers.
type Dispatcher struct {
	backend  Backend
	registry *capability.Registry
	bindings map[string]binding
}

// New builds a dispatcher over the standard capability set. It fails when a
// registered capability has no adapter, which would otherwise surface as an
// unknown-tool error at call time.
func New(backend Backend) (*Dispatcher, error) {
	registry, err := capability.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build capability registry: %w", err)
	}

	bindings := make(map[string]binding, registry.Len())
	for _, desc := range registry.List() {
		row, ok := adapterRows[desc.Name]
		if !ok {
			return nil, fmt.Errorf("capability %q has no adapter", desc.Name)
		}
		bindings[desc.Name] = binding{
			descriptor: desc,
			failPrefix: row.failPrefix,
			call:       row.call,
		}
	}

	logging.Debug("Dispatcher", "Bound %d capabilities", len(bindings))
	return &Dispatcher{
		backend:  backend,
		registry: registry,
		bindings: bindings,
	}, nil
}

// Dispatch runs one tool call and always produces a response. The call ID
// only correlates log lines; nothing downstream depends on it.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs map[string]any) (resp Response) {
	callID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			logging.Error("Dispatcher", fmt.Errorf("%v", r), "Call %s: recovered panic in %s", callID, name)
			resp = Response{Text: fmt.Sprintf("Error: %v", r), IsError: true}
		}
	}()

	logging.Info("Dispatcher", "Call %s: %s", callID, name)

	b, ok := d.bindings[name]
	if !ok {
		logging.Warn("Dispatcher", "Call %s: unknown tool %q", callID, name)
		return Response{Text: fmt.Sprintf("Error: Unknown tool: %s", name), IsError: true}
	}

	args, verr := validation.Normalize(b.descriptor, rawArgs)
	if verr != nil {
		logging.Warn("Dispatcher", "Call %s: rejected arguments: %v", callID, verr)
		return Response{Text: fmt.Sprintf("Invalid arguments for %s: %s", name, verr.Error()), IsError: true}
	}

	text, err := b.call(ctx, d.backend, args)
	if err != nil {
		logging.Error("Dispatcher", err, "Call %s: %s failed", callID, name)
		return Response{Text: fmt.Sprintf("%s: %s", b.failPrefix, err.Error()), IsError: true}
	}

	logging.Debug("Dispatcher", "Call %s: %s produced %d bytes", callID, name, len(text))
	return Response{Text: text}
}

// ListCapabilities returns the capability descriptors in declaration order.
// The result is a fresh copy on every call.
func (d *Dispatcher) ListCapabilities() []capability.Descriptor {
	return d.registry.List()
}
