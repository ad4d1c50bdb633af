package user

import (
	"net/http"
	"time"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

// Logout a user
//
//	@Summary      Logout a user
//	@Description  Destroy the current session
//	@Tags         user
//	@Produce      json
//	@Success      200  {object}  map[string]any "Logged out"
//	@Router       /api/v1/user/logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err == nil {
		if err := database.DeleteSession(h.DB, cookie.Value); err != nil {
			api.FailWith(w, err)
			return
		}
	}

	// expire the cookie client-side as well
	http.SetCookie(w, api.CreateSessionCookie(r, h.CookieDomain, "", time.Time{}))
	api.Success(w, nil)
}
