package api

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateToken derives a session token from a random base. bcrypt gives us a
// salted digest, md5-hex keeps the cookie value short and ASCII-safe.
func GenerateToken() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Errorf("failed to generate token: %w", err))
	}

	hasher := md5.New()
	hasher.Write(hash)
	return hex.EncodeToString(hasher.Sum(nil))
}

func CreateSessionCookie(r *http.Request, domain string, token string, expiry time.Time) *http.Cookie {
	secure := false
	if r != nil {
		if r.TLS != nil {
			secure = true
		}
		if strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
			secure = true
		}
	}

	cookie := &http.Cookie{
		Name:     "session_id",
		Value:    token,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	if expiry.IsZero() {
		cookie.Expires = time.Unix(1, 0)
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Unix(expiry.Unix()+1, 0)
		cookie.MaxAge = int(time.Until(expiry).Seconds() + 1)
	}

	return cookie
}
