package user

import (
	"net/http"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// Self returns the signed-in identity.
//
//	@Summary      Get current user
//	@Tags         user
//	@Produce      json
//	@Success      200  {object}  map[string]any "Current user"
//	@Failure      401  {object}  map[string]any "Not signed in"
//	@Router       /api/v1/user/self [get]
func (h *UserHandler) Self(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	api.Success(w, map[string]any{"user": user})
}
