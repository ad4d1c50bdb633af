package sessions

import (
	"net/http"

	"gorm.io/gorm"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type SessionsHandler struct {
	DB *gorm.DB
}

func (h *SessionsHandler) resolveProject(w http.ResponseWriter, r *http.Request) (*database.User, *database.Project, bool) {
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
