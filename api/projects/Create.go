package projects

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type ProjectCreate struct {
	Name      string `json:"name"`
	Language  string `json:"language"`
	Framework string `json:"framework"`
}

// curl -X POST -H "Content-Type: application/json" -b "session_id=..." -d '{"name":"demo","language":"python"}' http://localhost:5000/api/v1/projects/create

// Create a project
//
//	@Summary      Create a project
//	@Description  Create a project and scaffold its initial files
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Param        request body ProjectCreate true "Project data"
//	@Success      200  {object}  map[string]any "Project with scaffolded files"
//	@Failure      503  {object}  map[string]any "Generator unavailable"
//	@Router       /api/v1/projects/create [post]
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var data ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if data.Name == "" || data.Language == "" {
		api.Fail(w, http.StatusBadRequest, "Name and language are required")
		return
	}

	project, err := database.CreateProject(r.Context(), h.DB, h.Gateway, user, data.Name, data.Language, data.Framework)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	files, err := database.ListProjectFiles(h.DB, project)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"project": project, "files": files})
}
