package projects

import (
	"encoding/json"
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type CollaboratorAdd struct {
	Username    string          `json:"username"`
	Role        string          `json:"role"`
	Permissions json.RawMessage `json:"permissions"`
}

// AddCollaborator grants a role on the project to another user. Owner only.
// Granting a second time changes the existing role.
//
//	@Summary      Add a collaborator
//	@Tags         projects
//	@Accept       json
//	@Produce      json
//	@Param        project_uuid path string true "Project UUID"
//	@Param        request body CollaboratorAdd true "Grant data"
//	@Success      200  {object}  map[string]any "Collaboration grant"
//	@Failure      403  {object}  map[string]any "Not the owner"
//	@Router       /api/v1/projects/{project_uuid}/collaborators/add [post]
func (h *ProjectsHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	user, project, ok := h.resolveProject(w, r)
	if !ok {
		return
	}

	if user.ID != project.OwnerId {
		api.FailWith(w, database.ErrForbidden)
		return
	}

	var data CollaboratorAdd
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch data.Role {
	case database.RoleOwner, database.RoleCollaborator, database.RoleViewer:
	default:
		api.Fail(w, http.StatusBadRequest, "Invalid role")
		return
	}

	var collaborator database.User
	if q := h.DB.First(&collaborator, "username = ?", data.Username); q.Error != nil {
		api.FailWith(w, database.ErrNotFound)
		return
	}

	collaboration, err := database.GrantCollaboration(h.DB, &collaborator, project, data.Role, data.Permissions)
	if err != nil {
		api.FailWith(w, err)
		return
	}

	api.Success(w, map[string]any{"collaboration": collaboration})
}
