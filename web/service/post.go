package service

import (
	"thinker-ui/database"
	"thinker-ui/database/model"
	"thinker-ui/util/metrics"
	"thinker-ui/web/forms"
)

// PostFilter narrows a post listing. Zero values mean "no filter".
type PostFilter struct {
	RubricId *int
	Keyword  string
	UserId   int
	Page     int
	PerPage  int
}

// PostService implements the public post partition.
type PostService struct{}

// Posts returns one listing page of posts, newest first, with rubrics
// preloaded for display.
func (s *PostService) Posts(filter PostFilter) ([]model.Post, error) {
	db := database.GetDB()

	query := db.Model(model.Post{}).Preload("Rubric")
	if filter.RubricId != nil {
		query = query.Where("post_rubric_id = ?", *filter.RubricId)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if filter.UserId != 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}

	var posts []model.Post
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&posts).
		Error
	return posts, err
}

// Count returns the number of posts matching the filter, ignoring paging.
func (s *PostService) Count(filter PostFilter) (int64, error) {
	db := database.GetDB()

	query := db.Model(model.Post{})
	if filter.RubricId != nil {
		query = query.Where("post_rubric_id = ?", *filter.RubricId)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if filter.UserId != 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (s *PostService) Post(id int) (*model.Post, error) {
	db := database.GetDB()
	post := &model.Post{}
	err := db.Model(model.Post{}).
		Preload("Rubric").
		Preload("User").
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// RandomPost picks one post uniformly at random.
func (s *PostService) RandomPost() (*model.Post, error) {
	db := database.GetDB()
	post := &model.Post{}
	err := db.Model(model.Post{}).
		Preload("Rubric").
		Preload("User").
		Order("RANDOM()").
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create persists a new post. The owner comes from the session, never from
// the form: the validated client subset and the server-derived fields are
// combined here, in one place.
func (s *PostService) Create(ownerId int, form *forms.Post) error {
	db := database.GetDB()
	err := db.Create(&model.Post{
		Title:    form.Title,
		Content:  form.Content,
		UserId:   &ownerId,
		RubricId: form.RubricId,
	}).Error
	if err != nil {
		return err
	}
	metrics.PostsCreated.Inc()
	return nil
}

// Update rewrites the editable fields of an existing post. Ownership must
// already have been authenticated by the caller.
func (s *PostService) Update(id int, form *forms.Post) error {
	db := database.GetDB()
	return db.Model(model.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":          form.Title,
			"content":        form.Content,
			"post_rubric_id": form.RubricId,
		}).
		Error
}

// Delete removes a post by id. Deleting a missing post reports not-found.
func (s *PostService) Delete(id int) error {
	db := database.GetDB()
	result := db.Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Where("id = ?", id).First(&model.Post{}).Error
	}
	return nil
}

// AuthenticateOwner fetches the post and asserts that userId owns it. It
// always goes to the store, so a change of ownership is visible on the very
// next request; nothing is cached. Every self-service edit or delete of a
// post must pass here before any mutation. Moderator deletion deliberately
// does not: moderation overrides ownership and is gated by role alone.
func (s *PostService) AuthenticateOwner(postId int, userId int) (*model.Post, error) {
	post, err := s.Post(postId)
	if err != nil {
		return nil, err
	}
	if post.UserId == nil || *post.UserId != userId {
		return nil, ErrNotOwner
	}
	return post, nil
}
