package controller

import (
	"thinker-ui/logger"
	"thinker-ui/web/locale"
	"thinker-ui/web/service"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// ModerationController lets moderators remove any public post. The role gate
// on the group replaces the ownership check.
type ModerationController struct {
	BaseController

	postService service.PostService
}

func NewModerationController(moderator *gin.RouterGroup) *ModerationController {
	a := &ModerationController{}
	a.initRouter(moderator)
	return a
}

func (a *ModerationController) initRouter(moderator *gin.RouterGroup) {
	moderator.POST("/posts/:id/delete", a.deletePost)
}

func (a *ModerationController) deletePost(c *gin.Context) {
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := a.postService.Delete(id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	moderator := session.GetPrincipal(c)
	logger.Infof("moderator %q deleted post %d", moderator.Login, id)
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.postDeleted")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "posts")
}
