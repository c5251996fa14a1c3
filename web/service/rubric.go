package service

import (
	"thinker-ui/database"
	"thinker-ui/database/model"
	"thinker-ui/web/forms"
)

// PostRubricService manages the public post categories.
type PostRubricService struct{}

func (s *PostRubricService) Rubrics() ([]model.PostRubric, error) {
	db := database.GetDB()
	var rubrics []model.PostRubric
	err := db.Model(model.PostRubric{}).
		Order("title").
		Find(&rubrics).
		Error
	return rubrics, err
}

func (s *PostRubricService) Rubric(id int) (*model.PostRubric, error) {
	db := database.GetDB()
	rubric := &model.PostRubric{}
	err := db.Where("id = ?", id).First(rubric).Error
	if err != nil {
		return nil, err
	}
	return rubric, nil
}

func (s *PostRubricService) Create(ownerId int, form *forms.Rubric) error {
	db := database.GetDB()
	return db.Create(&model.PostRubric{
		Title:  form.Title,
		UserId: &ownerId,
	}).Error
}

func (s *PostRubricService) Update(id int, form *forms.Rubric) error {
	db := database.GetDB()
	return db.Model(model.PostRubric{}).
		Where("id = ?", id).
		Update("title", form.Title).
		Error
}

// Delete removes the rubric; posts under it keep existing with their rubric
// reference cleared by the schema.
func (s *PostRubricService) Delete(id int) error {
	db := database.GetDB()
	result := db.Where("id = ?", id).Delete(&model.PostRubric{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Where("id = ?", id).First(&model.PostRubric{}).Error
	}
	return nil
}

// AuthenticateOwner fetches the rubric and asserts ownership, re-checked on
// every request.
func (s *PostRubricService) AuthenticateOwner(rubricId int, userId int) (*model.PostRubric, error) {
	rubric, err := s.Rubric(rubricId)
	if err != nil {
		return nil, err
	}
	if rubric.UserId == nil || *rubric.UserId != userId {
		return nil, ErrNotOwner
	}
	return rubric, nil
}

// NoteRubricService manages the private note categories. Listings are always
// scoped to one user; there is no public view of note rubrics.
type NoteRubricService struct{}

func (s *NoteRubricService) Rubrics(userId int) ([]model.NoteRubric, error) {
	db := database.GetDB()
	var rubrics []model.NoteRubric
	err := db.Model(model.NoteRubric{}).
		Where("user_id = ?", userId).
		Order("title").
		Find(&rubrics).
		Error
	return rubrics, err
}

func (s *NoteRubricService) Rubric(id int) (*model.NoteRubric, error) {
	db := database.GetDB()
	rubric := &model.NoteRubric{}
	err := db.Where("id = ?", id).First(rubric).Error
	if err != nil {
		return nil, err
	}
	return rubric, nil
}

func (s *NoteRubricService) Create(ownerId int, form *forms.Rubric) error {
	db := database.GetDB()
	return db.Create(&model.NoteRubric{
		Title:  form.Title,
		UserId: ownerId,
	}).Error
}

func (s *NoteRubricService) Update(id int, form *forms.Rubric) error {
	db := database.GetDB()
	return db.Model(model.NoteRubric{}).
		Where("id = ?", id).
		Update("title", form.Title).
		Error
}

// Delete removes the rubric and, through the schema, every note filed under
// it.
func (s *NoteRubricService) Delete(id int) error {
	db := database.GetDB()
	result := db.Where("id = ?", id).Delete(&model.NoteRubric{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Where("id = ?", id).First(&model.NoteRubric{}).Error
	}
	return nil
}

func (s *NoteRubricService) AuthenticateOwner(rubricId int, userId int) (*model.NoteRubric, error) {
	rubric, err := s.Rubric(rubricId)
	if err != nil {
		return nil, err
	}
	if rubric.UserId != userId {
		return nil, ErrNotOwner
	}
	return rubric, nil
}
