package controller

import (
	"fmt"

	"thinker-ui/config"
	"thinker-ui/logger"
	"thinker-ui/web/forms"
	"thinker-ui/web/locale"
	"thinker-ui/web/service"
	"thinker-ui/web/session"

	"github.com/gin-gonic/gin"
)

// PostController handles the public post pages and the owner-gated post and
// post-rubric mutations.
type PostController struct {
	BaseController

	postService   service.PostService
	rubricService service.PostRubricService
}

// NewPostController wires the post routes. Reading is public, writing
// requires an authenticated user; ownership is checked per operation.
func NewPostController(public *gin.RouterGroup, user *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(public, user)
	return a
}

func (a *PostController) initRouter(public *gin.RouterGroup, user *gin.RouterGroup) {
	public.GET("/posts", a.posts)
	public.GET("/posts/random", a.randomPost)
	public.GET("/posts/:id", a.post)
	public.GET("/rubrics", a.rubrics)

	user.GET("/my/posts", a.myPosts)
	user.GET("/posts/create", a.createPostPage)
	user.POST("/posts/create", a.createPost)
	user.GET("/posts/:id/edit", a.editPostPage)
	user.POST("/posts/:id/edit", a.editPost)
	user.POST("/posts/:id/delete", a.deletePost)
	user.GET("/rubrics/create", a.createRubricPage)
	user.POST("/rubrics/create", a.createRubric)
	user.GET("/rubrics/:id/edit", a.editRubricPage)
	user.POST("/rubrics/:id/edit", a.editRubric)
	user.POST("/rubrics/:id/delete", a.deleteRubric)
}

// listFilter builds a post filter from the query string. Unusable query
// values are dropped rather than rejected, so shared links with stale
// parameters still render.
func (a *PostController) listFilter(c *gin.Context, userId int) service.PostFilter {
	params := &forms.ListParams{}
	forms.BindQuery(c, params)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Quantity < 1 || params.Quantity > 100 {
		params.Quantity = config.GetPostsPerPage()
	}
	return service.PostFilter{
		RubricId: params.RubricId,
		Keyword:  params.Keyword,
		UserId:   userId,
		Page:     params.Page,
		PerPage:  params.Quantity,
	}
}

func (a *PostController) renderPostList(c *gin.Context, filter service.PostFilter, template string, title string) {
	posts, err := a.postService.Posts(filter)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	total, err := a.postService.Count(filter)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	rubrics, err := a.rubricService.Rubrics()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, template, title, gin.H{
		"posts":      posts,
		"rubrics":    rubrics,
		"keyword":    filter.Keyword,
		"rubricId":   filter.RubricId,
		"pagination": service.Paginate(total, filter.Page, filter.PerPage),
	})
}

func (a *PostController) posts(c *gin.Context) {
	a.renderPostList(c, a.listFilter(c, 0), "posts.html", locale.I18nWeb(c, "pages.posts.title"))
}

func (a *PostController) myPosts(c *gin.Context) {
	principal := session.GetPrincipal(c)
	a.renderPostList(c, a.listFilter(c, principal.Id), "posts.html", locale.I18nWeb(c, "pages.myPosts.title"))
}

func (a *PostController) post(c *gin.Context) {
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	post, err := a.postService.Post(id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "post.html", post.Title, gin.H{"post": post})
}

func (a *PostController) randomPost(c *gin.Context) {
	post, err := a.postService.RandomPost()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	redirect(c, fmt.Sprintf("posts/%d", post.Id))
}

func (a *PostController) createPostPage(c *gin.Context) {
	rubrics, err := a.rubricService.Rubrics()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "post_form.html", locale.I18nWeb(c, "pages.posts.createTitle"), gin.H{
		"rubrics": rubrics,
		"action":  c.GetString("base_path") + "posts/create",
	})
}

func (a *PostController) createPost(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.Post{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"posts/create")
		return
	}
	if err := a.postService.Create(principal.Id, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"posts/create")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.postCreated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "my/posts")
}

func (a *PostController) editPostPage(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	post, err := a.postService.AuthenticateOwner(id, principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	rubrics, err := a.rubricService.Rubrics()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "post_form.html", locale.I18nWeb(c, "pages.posts.editTitle"), gin.H{
		"post":    post,
		"rubrics": rubrics,
		"action":  fmt.Sprintf("%sposts/%d/edit", c.GetString("base_path"), id),
	})
}

func (a *PostController) editPost(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	formURL := fmt.Sprintf("%sposts/%d/edit", c.GetString("base_path"), id)
	form := &forms.Post{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if _, err := a.postService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := a.postService.Update(id, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.postUpdated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, fmt.Sprintf("posts/%d", id))
}

func (a *PostController) deletePost(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if _, err := a.postService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := a.postService.Delete(id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.postDeleted")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "my/posts")
}

func (a *PostController) rubrics(c *gin.Context) {
	rubrics, err := a.rubricService.Rubrics()
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "rubrics.html", locale.I18nWeb(c, "pages.rubrics.title"), gin.H{
		"rubrics":   rubrics,
		"kind":      "rubrics",
		"canManage": session.IsLoggedIn(c),
	})
}

func (a *PostController) createRubricPage(c *gin.Context) {
	html(c, "rubric_form.html", locale.I18nWeb(c, "pages.rubrics.createTitle"), gin.H{
		"action": c.GetString("base_path") + "rubrics/create",
	})
}

func (a *PostController) createRubric(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.Rubric{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"rubrics/create")
		return
	}
	if err := a.rubricService.Create(principal.Id, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"rubrics/create")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.rubricCreated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "rubrics")
}

func (a *PostController) editRubricPage(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	rubric, err := a.rubricService.AuthenticateOwner(id, principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "rubric_form.html", locale.I18nWeb(c, "pages.rubrics.editTitle"), gin.H{
		"rubric": rubric,
		"action": fmt.Sprintf("%srubrics/%d/edit", c.GetString("base_path"), id),
	})
}

func (a *PostController) editRubric(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	formURL := fmt.Sprintf("%srubrics/%d/edit", c.GetString("base_path"), id)
	form := &forms.Rubric{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if _, err := a.rubricService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := a.rubricService.Update(id, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.rubricUpdated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "rubrics")
}

func (a *PostController) deleteRubric(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if _, err := a.rubricService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := a.rubricService.Delete(id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.rubricDeleted")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "rubrics")
}
