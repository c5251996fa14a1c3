package service

import (
	"thinker-ui/database"
	"thinker-ui/database/model"
	"thinker-ui/util/metrics"
	"thinker-ui/web/forms"
)

// NoteFilter narrows a note listing. UserId is mandatory: notes are private
// and every query is scoped to the owner.
type NoteFilter struct {
	UserId   int
	RubricId *int
	Keyword  string
	Page     int
	PerPage  int
}

// NoteService implements the private note partition.
type NoteService struct{}

func (s *NoteService) Notes(filter NoteFilter) ([]model.Note, error) {
	db := database.GetDB()

	query := db.Model(model.Note{}).
		Preload("Rubric").
		Where("user_id = ?", filter.UserId)
	if filter.RubricId != nil {
		query = query.Where("note_rubric_id = ?", *filter.RubricId)
	}
	if filter.Keyword != "" {
		query = query.Where("content LIKE ?", "%"+filter.Keyword+"%")
	}

	var notes []model.Note
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&notes).
		Error
	return notes, err
}

func (s *NoteService) Count(filter NoteFilter) (int64, error) {
	db := database.GetDB()

	query := db.Model(model.Note{}).Where("user_id = ?", filter.UserId)
	if filter.RubricId != nil {
		query = query.Where("note_rubric_id = ?", *filter.RubricId)
	}
	if filter.Keyword != "" {
		query = query.Where("content LIKE ?", "%"+filter.Keyword+"%")
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (s *NoteService) Note(id int) (*model.Note, error) {
	db := database.GetDB()
	note := &model.Note{}
	err := db.Model(model.Note{}).
		Preload("Rubric").
		Where("id = ?", id).
		First(note).
		Error
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Create persists a new note owned by ownerId. As with posts, the owner is
// server-derived and never read from the form.
func (s *NoteService) Create(ownerId int, form *forms.Note) error {
	db := database.GetDB()
	err := db.Create(&model.Note{
		Content:  form.Content,
		UserId:   ownerId,
		RubricId: form.RubricId,
	}).Error
	if err != nil {
		return err
	}
	metrics.NotesCreated.Inc()
	return nil
}

func (s *NoteService) Update(id int, form *forms.Note) error {
	db := database.GetDB()
	return db.Model(model.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content":        form.Content,
			"note_rubric_id": form.RubricId,
		}).
		Error
}

func (s *NoteService) Delete(id int) error {
	db := database.GetDB()
	result := db.Where("id = ?", id).Delete(&model.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Where("id = ?", id).First(&model.Note{}).Error
	}
	return nil
}

// AuthenticateOwner fetches the note and asserts ownership. Notes have their
// own check: it is never acceptable to verify a note mutation against some
// other resource kind's owner.
func (s *NoteService) AuthenticateOwner(noteId int, userId int) (*model.Note, error) {
	note, err := s.Note(noteId)
	if err != nil {
		return nil, err
	}
	if note.UserId != userId {
		return nil, ErrNotOwner
	}
	return note, nil
}
