package session

import (
	"crypto/hmac"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// CookieName is the session cookie set after a successful login.
const CookieName = "board_session"

// Cookie builds the signed cookie referencing sess. The value is
// "<id>.<hex signature>" so a tampered ID fails verification without a
// store lookup.
func (s *Store) Cookie(sess *Session) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID + "." + s.sign(sess.ID),
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie.
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest resolves the request's session cookie to a stored session.
// Missing, malformed, tampered and expired cookies all resolve to
// (nil, false); a bad cookie is never an error page.
func (s *Store) FromRequest(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	id, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || id == "" {
		return nil, false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return nil, false
	}
	sess, err := s.Get(id)
	if err != nil {
		return nil, false
	}
	return sess, true
}

func (s *Store) sign(id string) string {
	mac := hmac.New(sha3.New256, s.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
