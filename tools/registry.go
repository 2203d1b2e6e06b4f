package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

// Registry holds all registered tools.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// All returns every registered tool, sorted by name for stable output.
func (r *Registry) All() []Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]Tool, 0, len(names))
	for _, name := range names {
		result = append(result, r.tools[name])
	}
	return result
}

// OpenAITools converts every tool to an OpenAI function-calling definition.
func (r *Registry) OpenAITools() []openai.Tool {
	result := make([]openai.Tool, 0, len(r.tools))
	for _, tool := range r.All() {
		result = append(result, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.Parameters(),
			},
		})
	}
	return result
}

// Dispatch executes a tool call as handed back by the runtime: the tool
// name plus its raw JSON argument blob.
func (r *Registry) Dispatch(ctx context.Context, name, argsJSON string) (string, error) {
	tool, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	args := map[string]any{}
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
			return "", fmt.Errorf("tool %s: invalid arguments: %w", name, err)
		}
	}
	return tool.Execute(ctx, args)
}
