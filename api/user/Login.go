package user

import (
	"encoding/json"
	"net/http"
	"time"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// curl -X POST -H "Content-Type: application/json" -d '{"username":"alice","password":"password"}' http://localhost:5000/api/v1/user/login

// Login a user
//
//	@Summary      Login a user
//	@Description  Authenticate with username and password, issue a session cookie
//	@Tags         user
//	@Accept       json
//	@Produce      json
//	@Param        request body UserLogin true "Login credentials"
//	@Success      200  {object}  map[string]any "Login successful"
//	@Failure      401  {object}  map[string]any "Invalid username or password"
//	@Router       /api/v1/user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var data UserLogin

	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if data.Password == "" {
		api.FailWith(w, database.ErrInvalidCredentials)
		return
	}

	user, err := database.AuthenticateUser(h.DB, data.Username, []byte(data.Password))
	if err != nil {
		api.FailWith(w, err)
		return
	}

	expiry := time.Now().Add(24 * time.Hour)
	token := api.GenerateToken()
	if _, err := database.CreateSession(h.DB, user, token, expiry); err != nil {
		api.FailWith(w, err)
		return
	}

	cookie := api.CreateSessionCookie(r, h.CookieDomain, token, expiry)
	http.SetCookie(w, cookie)
	w.Header().Add("Cache-Control", `no-cache="Set-Cookie"`)

	api.Success(w, map[string]any{"user": user})
}
