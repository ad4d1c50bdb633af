package codegen

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	Language    string `json:"language"`
	Context     string `json:"context"`
	Model       string `json:"model"`
	SessionUUID string `json:"session_uuid"`
}

// curl -X POST -H "Content-Type: application/json" -b "session_id=..." -d '{"prompt":"fibonacci","language":"python"}' http://localhost:5000/api/v1/codegen/generate

// Generate code from a prompt
//
//	@Summary      Generate code
//	@Description  Generate code from a prompt, optionally recording the exchange in an AI session
//	@Tags         codegen
//	@Accept       json
//	@Produce      json
//	@Param        request body GenerateRequest true "Generation request"
//	@Success      200  {object}  map[string]any "Generated code"
//	@Failure      503  {object}  map[string]any "Generator unavailable"
//	@Router       /api/v1/codegen/generate [post]
func (h *CodegenHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var data GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if data.Prompt == "" {
		api.Fail(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	code, err := h.Gateway.Generate(r.Context(), data.Prompt, data.Context, data.Model)
	if failOr(w, err) {
		return
	}

	if err := h.recordInSession(r, data.SessionUUID, data.Prompt, code, database.InteractionCodeGeneration); err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"code": code, "language": data.Language})
}
