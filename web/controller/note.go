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

// NoteController handles private notes and note rubrics. Every route is
// gated to authenticated users, and every record access is scoped to the
// session's user.
type NoteController struct {
	BaseController

	noteService   service.NoteService
	rubricService service.NoteRubricService
}

func NewNoteController(user *gin.RouterGroup) *NoteController {
	a := &NoteController{}
	a.initRouter(user)
	return a
}

func (a *NoteController) initRouter(user *gin.RouterGroup) {
	user.GET("/notes", a.notes)
	user.GET("/notes/create", a.createNotePage)
	user.POST("/notes/create", a.createNote)
	user.GET("/notes/:id", a.note)
	user.GET("/notes/:id/edit", a.editNotePage)
	user.POST("/notes/:id/edit", a.editNote)
	user.POST("/notes/:id/delete", a.deleteNote)

	user.GET("/notes/rubrics", a.rubrics)
	user.GET("/notes/rubrics/create", a.createRubricPage)
	user.POST("/notes/rubrics/create", a.createRubric)
	user.GET("/notes/rubrics/:id/edit", a.editRubricPage)
	user.POST("/notes/rubrics/:id/edit", a.editRubric)
	user.POST("/notes/rubrics/:id/delete", a.deleteRubric)
}

func (a *NoteController) notes(c *gin.Context) {
	principal := session.GetPrincipal(c)
	params := &forms.ListParams{}
	forms.BindQuery(c, params)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Quantity < 1 || params.Quantity > 100 {
		params.Quantity = config.GetNotesPerPage()
	}
	filter := service.NoteFilter{
		UserId:   principal.Id,
		RubricId: params.RubricId,
		Keyword:  params.Keyword,
		Page:     params.Page,
		PerPage:  params.Quantity,
	}
	notes, err := a.noteService.Notes(filter)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	total, err := a.noteService.Count(filter)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	rubrics, err := a.rubricService.Rubrics(principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "notes.html", locale.I18nWeb(c, "pages.notes.title"), gin.H{
		"notes":      notes,
		"rubrics":    rubrics,
		"keyword":    filter.Keyword,
		"rubricId":   filter.RubricId,
		"pagination": service.Paginate(total, filter.Page, filter.PerPage),
	})
}

func (a *NoteController) note(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	note, err := a.noteService.AuthenticateOwner(id, principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "note.html", locale.I18nWeb(c, "pages.notes.title"), gin.H{"note": note})
}

func (a *NoteController) createNotePage(c *gin.Context) {
	principal := session.GetPrincipal(c)
	rubrics, err := a.rubricService.Rubrics(principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "note_form.html", locale.I18nWeb(c, "pages.notes.createTitle"), gin.H{
		"rubrics": rubrics,
		"action":  c.GetString("base_path") + "notes/create",
	})
}

func (a *NoteController) createNote(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.Note{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"notes/create")
		return
	}
	if err := a.noteService.Create(principal.Id, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"notes/create")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.noteCreated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "notes")
}

func (a *NoteController) editNotePage(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	note, err := a.noteService.AuthenticateOwner(id, principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	rubrics, err := a.rubricService.Rubrics(principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "note_form.html", locale.I18nWeb(c, "pages.notes.editTitle"), gin.H{
		"note":    note,
		"rubrics": rubrics,
		"action":  fmt.Sprintf("%snotes/%d/edit", c.GetString("base_path"), id),
	})
}

func (a *NoteController) editNote(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	formURL := fmt.Sprintf("%snotes/%d/edit", c.GetString("base_path"), id)
	form := &forms.Note{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if _, err := a.noteService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := a.noteService.Update(id, form); err != nil {
		a.completeWithError(c, err, formURL)
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.noteUpdated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, fmt.Sprintf("notes/%d", id))
}

func (a *NoteController) deleteNote(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if _, err := a.noteService.AuthenticateOwner(id, principal.Id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := a.noteService.Delete(id); err != nil {
		a.completeWithError(c, err, "")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.noteDeleted")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "notes")
}

func (a *NoteController) rubrics(c *gin.Context) {
	principal := session.GetPrincipal(c)
	rubrics, err := a.rubricService.Rubrics(principal.Id)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	html(c, "rubrics.html", locale.I18nWeb(c, "pages.rubrics.title"), gin.H{
		"rubrics":   rubrics,
		"kind":      "notes/rubrics",
		"canManage": true,
	})
}

func (a *NoteController) createRubricPage(c *gin.Context) {
	html(c, "rubric_form.html", locale.I18nWeb(c, "pages.rubrics.createTitle"), gin.H{
		"action": c.GetString("base_path") + "notes/rubrics/create",
	})
}

func (a *NoteController) createRubric(c *gin.Context) {
	principal := session.GetPrincipal(c)
	form := &forms.Rubric{}
	if err := forms.Bind(c, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"notes/rubrics/create")
		return
	}
	if err := a.rubricService.Create(principal.Id, form); err != nil {
		a.completeWithError(c, err, c.GetString("base_path")+"notes/rubrics/create")
		return
	}
	if err := session.PutAlert(c, locale.I18nWeb(c, "alerts.rubricCreated")); err != nil {
		logger.Warningf("failed to store alert: %v", err)
	}
	redirect(c, "notes/rubrics")
}

func (a *NoteController) editRubricPage(c *gin.Context) {
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
		"action": fmt.Sprintf("%snotes/rubrics/%d/edit", c.GetString("base_path"), id),
	})
}

func (a *NoteController) editRubric(c *gin.Context) {
	principal := session.GetPrincipal(c)
	id, err := getIdParam(c)
	if err != nil {
		a.completeWithError(c, err, "")
		return
	}
	formURL := fmt.Sprintf("%snotes/rubrics/%d/edit", c.GetString("base_path"), id)
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
	redirect(c, "notes/rubrics")
}

func (a *NoteController) deleteRubric(c *gin.Context) {
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
	redirect(c, "notes/rubrics")
}
