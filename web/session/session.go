// Package session reads and writes the per-client session cookie: the
// authenticated principal and the one-shot alert message. The cookie is
// signed and encrypted by the store, so only the server can mint a valid one.
package session

import (
	"encoding/gob"

	"thinker-ui/database/model"
	"thinker-ui/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

const (
	principalKey = "PRINCIPAL"
	alertKey     = "ALERT"
)

func init() {
	gob.Register(model.Principal{})
}

// SetPrincipal replaces the session's identity with the given principal.
func SetPrincipal(c *gin.Context, p *model.Principal) error {
	s := sessions.Default(c)
	s.Set(principalKey, *p)
	return s.Save()
}

// GetPrincipal returns the session's identity, or nil when the request has no
// session or the session carries no identity. Both count as "visitor" for
// authorization, but the debug log tells them apart.
func GetPrincipal(c *gin.Context) *model.Principal {
	s := sessions.Default(c)
	obj := s.Get(principalKey)
	if obj == nil {
		if _, err := c.Request.Cookie(CookieName); err != nil {
			logger.Debugf("no session cookie on %s", c.Request.URL.Path)
		} else {
			logger.Debugf("session without identity on %s", c.Request.URL.Path)
		}
		return nil
	}
	p, ok := obj.(model.Principal)
	if !ok {
		logger.Debugf("session identity has unexpected type %T", obj)
		return nil
	}
	return &p
}

func IsLoggedIn(c *gin.Context) bool {
	return GetPrincipal(c) != nil
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// Clear invalidates the whole session, identity and alert alike. Safe to call
// on an already-empty session.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// PutAlert stores the one-shot message shown on the next rendered page.
func PutAlert(c *gin.Context, message string) error {
	s := sessions.Default(c)
	s.Set(alertKey, message)
	return s.Save()
}

// TakeAlert returns the pending alert message and clears it, so a message is
// displayed at most once.
func TakeAlert(c *gin.Context) string {
	s := sessions.Default(c)
	obj := s.Get(alertKey)
	if obj == nil {
		return ""
	}
	s.Delete(alertKey)
	if err := s.Save(); err != nil {
		return ""
	}
	message, _ := obj.(string)
	return message
}
