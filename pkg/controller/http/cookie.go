package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/harsh2b/WellMate/pkg/domain/types"
)

const sessionCookieName = "wellmate_session"

// sessionCookie signs the session ID with HMAC-SHA256 so a tampered cookie
// is rejected instead of resolving to another guest's record.
type sessionCookie struct {
	secret []byte
}

func newSessionCookie(secret []byte) *sessionCookie {
	return &sessionCookie{secret: secret}
}

func (c *sessionCookie) sign(id types.SessionID) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (c *sessionCookie) Issue(w http.ResponseWriter, id types.SessionID) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id.String() + "." + c.sign(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *sessionCookie) Read(r *http.Request) (types.SessionID, bool) {
	raw, err := r.Cookie(sessionCookieName)
	if err != nil {
		return types.EmptySessionID, false
	}

	value, sig, ok := strings.Cut(raw.Value, ".")
	if !ok {
		return types.EmptySessionID, false
	}

	id := types.SessionID(value)
	if !hmac.Equal([]byte(c.sign(id)), []byte(sig)) {
		return types.EmptySessionID, false
	}

	return id, true
}

func (c *sessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
