// Package controller provides the HTTP request handlers for the thinker-ui
// publishing pages: posts, notes, rubrics, accounts and administration.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"thinker-ui/config"
	"thinker-ui/database"
	"thinker-ui/logger"
	"thinker-ui/web/forms"
	"thinker-ui/web/locale"
	"thinker-ui/web/service"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers: page
// rendering and the single place where operation errors become responses.
type BaseController struct{}

// html renders an HTML template with the shared page context: title,
// the session's principal, the pending alert, base path and version.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["principal"] = session.GetPrincipal(c)
	data["alert"] = session.TakeAlert(c)
	data["base_path"] = c.GetString("base_path")
	data["cur_ver"] = config.GetVersion()
	data["i18n"] = i18nFunc(c)
	c.HTML(http.StatusOK, name, data)
}

// i18nFunc binds the translation lookup to the request, so templates render
// in the request's language.
func i18nFunc(c *gin.Context) func(key string, params ...string) string {
	return func(key string, params ...string) string {
		return locale.I18nWeb(c, key, params...)
	}
}

// renderErrorPage shows the error page with the given status code and a
// localized message for it.
func renderErrorPage(c *gin.Context, code int) {
	var key string
	switch code {
	case http.StatusBadRequest:
		key = "errors.badRequest"
	case http.StatusUnauthorized:
		key = "errors.unauthorized"
	case http.StatusForbidden:
		key = "errors.forbidden"
	case http.StatusNotFound:
		key = "errors.notFound"
	default:
		key = "errors.internal"
	}
	c.HTML(code, "error.html", gin.H{
		"title":     strconv.Itoa(code),
		"code":      code,
		"message":   locale.I18nWeb(c, key),
		"principal": session.GetPrincipal(c),
		"base_path": c.GetString("base_path"),
		"cur_ver":   config.GetVersion(),
		"i18n":      i18nFunc(c),
	})
}

// completeWithError turns an operation error into a response. Validation and
// user-facing errors send the client back to the form with an alert;
// constraint violations, missing records and ownership failures map to their
// status pages; everything else is logged and answered with the 500 page.
func (a *BaseController) completeWithError(c *gin.Context, err error, formURL string) {
	var validationErr *forms.ValidationError
	var userFacing service.UserFacing
	switch {
	case errors.As(err, &validationErr):
		if putErr := session.PutAlert(c, validationErr.Message()); putErr != nil {
			logger.Warningf("failed to store alert: %v", putErr)
		}
		c.Redirect(http.StatusFound, formURL)
	case errors.As(err, &userFacing):
		if putErr := session.PutAlert(c, userFacing.UserMessage()); putErr != nil {
			logger.Warningf("failed to store alert: %v", putErr)
		}
		c.Redirect(http.StatusFound, formURL)
	case database.IsConstraintViolation(err):
		renderErrorPage(c, http.StatusBadRequest)
	case database.IsNotFound(err):
		renderErrorPage(c, http.StatusNotFound)
	case errors.Is(err, service.ErrNotOwner):
		renderErrorPage(c, http.StatusForbidden)
	default:
		logger.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		renderErrorPage(c, http.StatusInternalServerError)
	}
}

// getIdParam parses the :id path segment. A malformed id is reported the same
// way as a missing record, so probing URLs reveal nothing.
func getIdParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, database.ErrRecordNotFound
	}
	return id, nil
}

// redirect sends the client to a page under the configured base path.
func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, c.GetString("base_path")+path)
}
