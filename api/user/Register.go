package user

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"dreamcatcher/api"
	"dreamcatcher/database"
)

type UserRegister struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// curl -X POST -H "Content-Type: application/json" -d '{"username": "alice", "email":"alice@example.com","password":"password"}' http://localhost:5000/api/v1/user/register

// Register a user
//
//	@Summary      Register a user
//	@Description  Create an account and sign it in
//	@Tags         user
//	@Accept       json
//	@Produce      json
//	@Param        request body UserRegister true "Registration data"
//	@Success      200  {object}  map[string]any "User created"
//	@Failure      400  {object}  map[string]any "Duplicate username or email"
//	@Router       /api/v1/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var data UserRegister

	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := mail.ParseAddress(data.Email); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid email")
		return
	}

	if len(data.Password) < 8 {
		api.Fail(w, http.StatusBadRequest, "Password too short")
		return
	}

	user, err := database.RegisterUser(h.DB, data.Username, data.Email, []byte(data.Password))
	if err != nil {
		api.FailWith(w, err)
		return
	}

	// registration signs the user in directly
	expiry := time.Now().Add(24 * time.Hour)
	token := api.GenerateToken()
	if _, err := database.CreateSession(h.DB, user, token, expiry); err != nil {
		api.FailWith(w, err)
		return
	}

	http.SetCookie(w, api.CreateSessionCookie(r, h.CookieDomain, token, expiry))
	api.Success(w, map[string]any{"user": user})
}
