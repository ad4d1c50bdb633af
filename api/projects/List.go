package projects

import (
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// List returns the projects the signed-in user owns. Shared projects do not
// show up here; they are reachable by uuid once a grant exists.
//
//	@Summary      List owned projects
//	@Tags         projects
//	@Produce      json
//	@Success      200  {object}  map[string]any "Owned projects"
//	@Router       /api/v1/projects/list [get]
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	projects, err := database.ListProjects(h.DB, user)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"projects": projects})
}
