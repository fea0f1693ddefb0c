// Package session holds the authenticated identity and persists it
// between runs. The credential is the source of truth: without a
// token there is no identity, and the user id and nickname are only
// ever present together.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the current auth state. The zero value is logged out.
type Session struct {
	Token    string `json:"access_token,omitempty"`
	UserID   int64  `json:"user_id,omitempty"`
	Nickname string `json:"user_nickname,omitempty"`
}

// LoggedIn reports whether a credential is present.
func (s Session) LoggedIn() bool { return s.Token != "" }

// Identity returns the user id when the full identity is known.
func (s Session) Identity() (int64, bool) {
	s = s.normalized()
	if s.UserID == 0 {
		return 0, false
	}
	return s.UserID, true
}

// normalized enforces the invariants: no token forces an anonymous
// session, and a partial identity (id without nickname or vice versa)
// collapses to none.
func (s Session) normalized() Session {
	if s.Token == "" {
		return Session{}
	}
	if s.UserID == 0 || s.Nickname == "" {
		s.UserID = 0
		s.Nickname = ""
	}
	return s
}

// TokenExpired inspects the credential's exp claim locally, without
// verifying the signature, so a stale login can be reported before a
// round-trip. Tokens that do not parse as JWT are treated as opaque
// and never locally expired; the server remains the authority either
// way.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
