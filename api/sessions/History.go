package sessions

import (
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// History returns a session's interactions, oldest first.
//
//	@Summary      Get session history
//	@Tags         sessions
//	@Produce      json
//	@Param        project_uuid path string true "Project UUID"
//	@Param        session_uuid path string true "Session UUID"
//	@Success      200  {object}  map[string]any "Interactions ascending by timestamp"
//	@Failure      403  {object}  map[string]any "No view access"
//	@Failure      404  {object}  map[string]any "Unknown session"
//	@Router       /api/v1/projects/{project_uuid}/sessions/{session_uuid}/history [get]
func (h *SessionsHandler) History(w http.ResponseWriter, r *http.Request) {
	user, project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	canView, err := database.CanView(h.DB, user, project)
	if err != nil {
		api.FailWith(w, err)
		return
	}
	if !canView {
		api.FailWith(w, database.ErrForbidden)
		return
	}

	session, err := database.GetAISessionByUUID(h.DB, r.PathValue("session_uuid"))
	if err != nil {
		api.FailWith(w, err)
		return
	}
	if session.ProjectId != project.ID {
		api.FailWith(w, database.ErrNotFound)
		return
	}

	interactions, err := database.SessionHistory(h.DB, session)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"session": session, "interactions": interactions})
}
