package codegen

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type CompleteRequest struct {
	Code        string `json:"code"`
	Context     string `json:"context"`
	Model       string `json:"model"`
	SessionUUID string `json:"session_uuid"`
}

// Complete partial code
//
//	@Summary      Complete code
//	@Tags         codegen
//	@Accept       json
//	@Produce      json
//	@Param        request body CompleteRequest true "Completion request"
//	@Success      200  {object}  map[string]any "Completion"
//	@Failure      503  {object}  map[string]any "Generator unavailable"
//	@Router       /api/v1/codegen/complete [post]
func (h *CodegenHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var data CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	completion, err := h.Gateway.Complete(r.Context(), data.Code, data.Context, data.Model)
	if failOr(w, err) {
		return
	}

	if err := h.recordInSession(r, data.SessionUUID, data.Code, completion, database.InteractionCompletion); err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"completion": completion})
}
