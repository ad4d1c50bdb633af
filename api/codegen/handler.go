package codegen

import (
	"net/http"

	"gorm.io/gorm"

	"dreamcatcher/api"
	"dreamcatcher/database"
	"dreamcatcher/generator"
)

type CodegenHandler struct {
	DB      *gorm.DB
	Gateway *generator.Gateway
}

// recordInSession appends an interaction to the named session, provided the
// caller may edit the session's project. A request without a session uuid is a
// one-off call and records nothing.
func (h *CodegenHandler) recordInSession(r *http.Request, sessionUUID string, userInput string, aiResponse string, interactionType string) error {
	if sessionUUID == "" {
		return nil
	}

	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		return database.ErrForbidden
	}

	session, err := database.GetAISessionByUUID(h.DB, sessionUUID)
	if err != nil {
		return err
	}

	project, err := database.GetProject(h.DB, session.ProjectId)
	if err != nil {
		return err
	}

	canEdit, err := database.CanEdit(h.DB, user, project)
	if err != nil {
		return err
	}
	if !canEdit {
		return database.ErrForbidden
	}

	_, err = database.RecordInteraction(h.DB, session, userInput, aiResponse, interactionType)
	return err
}

func failOr(w http.ResponseWriter, err error) bool {
	if err != nil {
		api.FailWith(w, err)
		return true
	}
	return false
}
