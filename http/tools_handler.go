package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/property-api/tools"
)

type ToolsDeps struct {
	Registry *tools.Registry
}

type ToolCallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// RegisterTools mounts the tool boundary over HTTP: the runtime discovers
// the function-calling definitions at GET /tools and executes calls it was
// handed by the model at POST /tools/call.
func RegisterTools(r chi.Router, d ToolsDeps) {
	r.Get("/tools", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "tools": d.Registry.OpenAITools()})
	})

	r.Post("/tools/call", func(w http.ResponseWriter, req *http.Request) {
		var body ToolCallRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		if _, ok := d.Registry.Get(body.Name); !ok {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "unknown_tool", "detail": body.Name})
			return
		}
		result, err := d.Registry.Dispatch(req.Context(), body.Name, string(body.Arguments))
		if err != nil {
			writeAdapterError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "result": result})
	})
}
