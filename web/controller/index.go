package controller

import (
	"thinker-ui/web/locale"

	"github.com/gin-gonic/gin"
)

// IndexController handles the public landing pages.
type IndexController struct {
	BaseController
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/contacts", a.contacts)
}

func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", locale.I18nWeb(c, "pages.index.title"), gin.H{
		"welcome": locale.I18nWeb(c, "pages.index.welcome"),
	})
}

func (a *IndexController) contacts(c *gin.Context) {
	html(c, "contacts.html", locale.I18nWeb(c, "pages.contacts.title"), nil)
}
