package service

import (
	"testing"

	"thinker-ui/database"
	"thinker-ui/web/forms"

	"github.com/stretchr/testify/assert"
)

func TestNoteLifecycle(t *testing.T) {
	setup()
	defer teardown()

	service := NoteService{}
	ownerId := registerUser(t, "writer")

	assert.NoError(t, service.Create(ownerId, &forms.Note{Content: "remember the milk"}))

	notes, err := service.Notes(NoteFilter{UserId: ownerId, Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	noteId := notes[0].Id

	assert.NoError(t, service.Update(noteId, &forms.Note{Content: "milk bought"}))
	note, err := service.Note(noteId)
	assert.NoError(t, err)
	assert.Equal(t, "milk bought", note.Content)

	assert.NoError(t, service.Delete(noteId))
	_, err = service.Note(noteId)
	assert.True(t, database.IsNotFound(err))
}

func TestNotesAreScopedToOwner(t *testing.T) {
	setup()
	defer teardown()

	service := NoteService{}
	alice := registerUser(t, "alice")
	bob := registerUser(t, "bob")

	assert.NoError(t, service.Create(alice, &forms.Note{Content: "alice's secret"}))
	assert.NoError(t, service.Create(bob, &forms.Note{Content: "bob's secret"}))

	// Listings never cross user boundaries, whatever the filter.
	aliceNotes, err := service.Notes(NoteFilter{UserId: alice, Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, aliceNotes, 1)
	assert.Equal(t, "alice's secret", aliceNotes[0].Content)

	crossKeyword, err := service.Notes(NoteFilter{UserId: alice, Keyword: "bob", Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Empty(t, crossKeyword)

	// Direct access to another user's note fails ownership, and the check
	// is against the note's own owner record.
	bobNotes, _ := service.Notes(NoteFilter{UserId: bob, Page: 1, PerPage: 10})
	_, err = service.AuthenticateOwner(bobNotes[0].Id, alice)
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = service.AuthenticateOwner(bobNotes[0].Id, bob)
	assert.NoError(t, err)
}

func TestNoteRubricsPerUser(t *testing.T) {
	setup()
	defer teardown()

	service := NoteRubricService{}
	alice := registerUser(t, "alice")
	bob := registerUser(t, "bob")

	assert.NoError(t, service.Create(alice, &forms.Rubric{Title: "Work"}))
	assert.NoError(t, service.Create(bob, &forms.Rubric{Title: "Home"}))

	// Each user sees only their own note rubrics.
	aliceRubrics, err := service.Rubrics(alice)
	assert.NoError(t, err)
	assert.Len(t, aliceRubrics, 1)
	assert.Equal(t, "Work", aliceRubrics[0].Title)

	_, err = service.AuthenticateOwner(aliceRubrics[0].Id, bob)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestNoteFilterByRubric(t *testing.T) {
	setup()
	defer teardown()

	noteService := NoteService{}
	rubricService := NoteRubricService{}
	ownerId := registerUser(t, "writer")

	assert.NoError(t, rubricService.Create(ownerId, &forms.Rubric{Title: "Ideas"}))
	rubrics, _ := rubricService.Rubrics(ownerId)
	ideas := rubrics[0].Id

	assert.NoError(t, noteService.Create(ownerId, &forms.Note{Content: "filed idea", RubricId: &ideas}))
	assert.NoError(t, noteService.Create(ownerId, &forms.Note{Content: "loose thought"}))

	filed, err := noteService.Notes(NoteFilter{UserId: ownerId, RubricId: &ideas, Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, filed, 1)
	assert.Equal(t, "filed idea", filed[0].Content)

	count, err := noteService.Count(NoteFilter{UserId: ownerId, RubricId: &ideas})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestNoteRubricCascade(t *testing.T) {
	setup()
	defer teardown()

	noteService := NoteService{}
	rubricService := NoteRubricService{}
	ownerId := registerUser(t, "writer")

	assert.NoError(t, rubricService.Create(ownerId, &forms.Rubric{Title: "Doomed"}))
	rubrics, _ := rubricService.Rubrics(ownerId)
	doomed := rubrics[0].Id

	assert.NoError(t, noteService.Create(ownerId, &forms.Note{Content: "goes down with the ship", RubricId: &doomed}))

	// Deleting the rubric takes its notes with it.
	assert.NoError(t, rubricService.Delete(doomed))
	count, err := noteService.Count(NoteFilter{UserId: ownerId})
	assert.NoError(t, err)
	assert.Zero(t, count)
}
