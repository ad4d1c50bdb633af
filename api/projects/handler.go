package projects

import (
	"net/http"

	"gorm.io/gorm"

	"dreamcatcher/api"
	"dreamcatcher/database"
	"dreamcatcher/generator"
)

type ProjectsHandler struct {
	DB      *gorm.DB
	Gateway *generator.Gateway
}

// resolveProject pulls the signed-in user from the context and the project
// from the {project_uuid} path segment. Writes the error response itself on
// failure.
func (h *ProjectsHandler) resolveProject(w http.ResponseWriter, r *http.Request) (*database.User, *database.Project, bool) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Not signed in")
		return nil, nil, false
	}

	project, err := database.GetProjectByUUID(h.DB, r.PathValue("project_uuid"))
	if err != nil {
		api.FailWith(w, err)
		return nil, nil, false
	}

	return user, project, true
}
