package sessions

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
	"dreamcatcher/generator"
)

type SessionStart struct {
	Name    string          `json:"name"`
	Model   string          `json:"model"`
	Context json.RawMessage `json:"context"`
}

// Start opens a named AI session on a project.
//
//	@Summary      Start an AI session
//	@Tags         sessions
//	@Accept       json
//	@Produce      json
//	@Param        project_uuid path string true "Project UUID"
//	@Param        request body SessionStart true "Session data"
//	@Success      200  {object}  map[string]any "New session"
//	@Failure      403  {object}  map[string]any "No edit access"
//	@Router       /api/v1/projects/{project_uuid}/sessions/start [post]
func (h *SessionsHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	canEdit, err := database.CanEdit(h.DB, user, project)
	if err != nil {
		api.FailWith(w, err)
		return
	}
	if !canEdit {
		api.FailWith(w, database.ErrForbidden)
		return
	}

	var data SessionStart
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if data.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Session name is required")
		return
	}
	if data.Model == "" {
		data.Model = generator.DefaultModel
	}

	session, err := database.StartAISession(h.DB, project, data.Name, data.Model, data.Context)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"session": session})
}
