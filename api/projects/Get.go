package projects

import (
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// Get returns a project and its files.
//
//	@Summary      Get a project
//	@Tags         projects
//	@Produce      json
//	@Param        project_uuid path string true "Project UUID"
//	@Success      200  {object}  map[string]any "Project with files"
//	@Failure      403  {object}  map[string]any "No access"
//	@Failure      404  {object}  map[string]any "Not found"
//	@Router       /api/v1/projects/{project_uuid} [get]
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	files, err := database.ListProjectFiles(h.DB, project)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"project": project, "files": files})
}
