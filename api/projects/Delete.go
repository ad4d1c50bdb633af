package projects

import (
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// Delete removes a project and, with it, all its files, collaborations and AI
// sessions. Owner only.
//
//	@Summary      Delete a project
//	@Tags         projects
//	@Produce      json
//	@Param        project_uuid path string true "Project UUID"
//	@Success      200  {object}  map[string]any "Deleted"
//	@Failure      403  {object}  map[string]any "Not the owner"
//	@Router       /api/v1/projects/{project_uuid} [delete]
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	if user.ID != project.OwnerId {
		api.FailWith(w, database.ErrForbidden)
		return
	}

	if err := database.DeleteProject(h.DB, project.ID); err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, nil)
}
