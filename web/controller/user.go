package controller

import (
	"thinker-ui/config"
	"thinker-ui/logger"
	"thinker-ui/util/metrics"
	"thinker-ui/web/forms"
	"thinker-ui/web/locale"
	"thinker-ui/web/service"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// UserController handles registration, sign-in, sign-out and the account
// settings page.
type UserController struct {
	BaseController

	userService service.UserService
}

// NewUserController wires the account routes. Registration and sign-in go on
// the visitor-only group, settings on the authenticated group, and sign-out
// stays public so it is safe to repeat on a dead session.
func NewUserController(public *gin.RouterGroup, visitor *gin.RouterGroup, user *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(public, visitor, user)
	return a
}

func (a *UserController) initRouter(public *gin.RouterGroup, visitor *gin.RouterGroup, user *gin.RouterGroup) {
	visitor.GET("/register", a.registerPage)
	visitor.POST("/register", a.register)
	visitor.GET("/login", a.loginPage)
	visitor.POST("/login", a.login)

	public.GET("/logout", a.logout)

	user.GET("/settings", a.settingsPage)
	user.POST("/settings/login", a.updateLogin)
	user.POST("/settings/password", a.updatePassword)
}

func (a *UserController) registerPage(c *gin.Context) {
	html(c, "register.html", locale.I18nWeb(c, "pages.register.title"), nil)
}

func (a *UserController) register(c *gin.Context) {
	form := &forms.Credentials{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/register")
		return
	}
	if err := a.userService.Register(form.Login, form.Password); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/register")
		return
	}
	logger.Infof("user %q registered", form.Login)
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.registered")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "user/login")
}

func (a *UserController) loginPage(c *gin.Context) {
	html(c, "login.html", locale.I18nWeb(c, "pages.login.title"), nil)
}

func (a *UserController) login(c *gin.Context) {
	form := &forms.Credentials{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/login")
		return
	}
	principal, err := a.userService.Authorize(form.Login, form.Password)
	if err != nil {
		logger.Warningf("login attempt for %q from %s rejected: %v", form.Login, c.ClientIP(), err)
		metrics.LoginsFailed.Inc()
		a.completeWithError(c, err, c.GetString("base_path")+"user/login")
		return
	}
	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warningf("failed to set session max age: %v", err)
	}
	if err := session.SetPrincipal(c, principal); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/login")
		return
	}
	metrics.LoginsSucceeded.Inc()
	logger.Infof("user %q logged in from %s", principal.Login, c.ClientIP())
	redirect(c, "")
}

func (a *UserController) logout(c *gin.Context) {
	if p := session.GetPrincipal(c); p != nil {
		logger.Infof("user %q logged out", p.Login)
	}
	if err := session.Clear(c); err != nil {
		logger.Warningf("failed to clear session: %v", err)
	}
	redirect(c, "")
}

func (a *UserController) settingsPage(c *gin.Context) {
	html(c, "settings.html", locale.I18nWeb(c, "pages.settings.title"), nil)
}

func (a *UserController) updateLogin(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.NewLogin{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/settings")
		return
	}
	if err := a.userService.UpdateLogin(principal.Id, form.NewLogin); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/settings")
		return
	}
	// The session still carries the old login; refresh it.
	principal.Login = form.NewLogin
	if err := session.SetPrincipal(c, principal); err != nil {
		logger.Warningf("failed to refresh session principal: %v", err)
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.loginChanged")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "user/settings")
}

func (a *UserController) updatePassword(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.NewPassword{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/settings")
		return
	}
	if err := a.userService.UpdatePassword(principal.Id, form.NewPassword); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"user/settings")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.passwordChanged")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "user/settings")
}
