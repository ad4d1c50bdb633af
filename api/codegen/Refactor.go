package codegen

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type RefactorRequest struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	Model       string `json:"model"`
	SessionUUID string `json:"session_uuid"`
}

// Refactor existing code
//
//	@Summary      Refactor code
//	@Tags         codegen
//	@Accept       json
//	@Produce      json
//	@Param        request body RefactorRequest true "Refactor request"
//	@Success      200  {object}  map[string]any "Refactored code"
//	@Failure      503  {object}  map[string]any "Generator unavailable"
//	@Router       /api/v1/codegen/refactor [post]
func (h *CodegenHandler) Refactor(w http.ResponseWriter, r *http.Request) {
	var data RefactorRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	refactored, err := h.Gateway.Refactor(r.Context(), data.Code, data.Type, data.Model)
	if failOr(w, err) {
		return
	}

	if err := h.recordInSession(r, data.SessionUUID, data.Code, refactored, database.InteractionRefactoring); err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"refactored_code": refactored})
}
