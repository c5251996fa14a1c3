package controller

import (
	"thinker-ui/logger"
	"thinker-ui/web/locale"
	"thinker-ui/web/service"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// AdminController handles user administration and the server status page.
// Its routes are mounted on the admin-gated group.
type AdminController struct {
	BaseController

	userService   service.UserService
	statusService service.StatusService
}

func NewAdminController(admin *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(admin)
	return a
}

func (a *AdminController) initRouter(admin *gin.RouterGroup) {
	admin.GET("/users", a.users)
	admin.POST("/users/:id/moderator", a.grantModerator)
	admin.POST("/users/:id/moderator/revoke", a.revokeModerator)
	admin.GET("/status", a.status)
}

func (a *AdminController) users(c *gin.Context) {
	users, err := a.userService.Users()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "users.html", locale.I18nWeb(c, "pages.users.title"), gin.H{"users": users})
}

func (a *AdminController) grantModerator(c *gin.Context) {
	a.setModerator(c, true, "alerts.moderatorGranted")
}

func (a *AdminController) revokeModerator(c *gin.Context) {
	a.setModerator(c, false, "alerts.moderatorRevoked")
}

func (a *AdminController) setModerator(c *gin.Context, value bool, alertKey string) {
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if value {
		err = a.userService.GrantModerator(id)
	} else {
		err = a.userService.RevokeModerator(id)
	}
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	admin := session.GetPrincipal(c)
	logger.Infof("admin %q set moderator=%v for user %d", admin.Login, value, id)
	if err := session.PutAlert(c, locale.I18nWeb(c, alertKey)); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "admin/users")
}

func (a *AdminController) status(c *gin.Context) {
	html(c, "status.html", locale.I18nWeb(c, "pages.status.title"), gin.H{
		"status": a.statusService.GetStatus(),
	})
}
