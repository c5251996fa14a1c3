// Package middleware provides the request gates that run before any handler
// body: role checks, domain validation and usage counting.
package middleware

import (
	"net/http"

	"thinker-ui/config"
	"thinker-ui/database/model"
	"thinker-ui/web/locale"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group behind a minimum role. It checks only the
// class of the identity against the class of the action; whether the identity
// may touch a specific record is the ownership check's job, later in the
// pipeline.
//
// No identity: browsers are redirected to the login page, AJAX callers get a
// bare 401. Identity with an insufficient role: 403. The gate aborts before
// the handler runs, so a rejected request has no side effects.
func RequireRole(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := session.GetPrincipal(c)
		if principal == nil {
			if isAjax(c) {
				c.AbortWithStatus(http.StatusUnauthorized)
			} else {
				c.Redirect(http.StatusFound, c.GetString("base_path")+"user/login")
				c.Abort()
			}
			return
		}
		if !principal.Role.Satisfies(required) {
			if isAjax(c) {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"title":     "403",
				"code":      http.StatusForbidden,
				"message":   "Sorry, but it is forbidden for you :)",
				"base_path": c.GetString("base_path"),
				"cur_ver":   config.GetVersion(),
				"principal": principal,
				"i18n": func(key string, params ...string) string {
					return locale.I18nWeb(c, key, params...)
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// VisitorOnly guards pages that make sense only without a session, the login
// and registration forms. A logged-in principal is sent to the landing page
// instead, so a user cannot "re-register" over a live session.
func VisitorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsLoggedIn(c) {
			c.Redirect(http.StatusFound, c.GetString("base_path"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
