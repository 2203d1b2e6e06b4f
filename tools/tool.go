// Package tools exposes the callable surface the conversational runtime
// invokes. Each tool wraps one adapter operation and returns display-ready
// text; the runtime itself (prompting, transcripts) lives outside this
// module.
package tools

import "context"

// Tool is one callable operation.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description for the runtime.
	Description() string

	// Parameters returns the JSON schema for the tool's arguments.
	Parameters() map[string]any

	// Execute runs the tool. A zero-matches lookup is not an error: it
	// returns a plain "no property found" message instead.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
