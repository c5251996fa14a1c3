package service

import (
	"testing"

	"thinker-ui/database"
	"thinker-ui/web/forms"

	"github.com/stretchr/testify/assert"
)

// registerUser creates an account and returns its id.
func registerUser(t *testing.T, login string) int {
	t.Helper()
	userService := UserService{}
	assert.NoError(t, userService.Register(login, "sup3r-secret"))
	principal, err := userService.Authorize(login, "sup3r-secret")
	assert.NoError(t, err)
	return principal.Id
}

func TestPostLifecycle(t *testing.T) {
	setup()
	defer teardown()

	service := PostService{}
	ownerId := registerUser(t, "author")

	err := service.Create(ownerId, &forms.Post{Title: "First post", Content: "Hello, world!"})
	assert.NoError(t, err)

	posts, err := service.Posts(PostFilter{Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	post := posts[0]
	assert.Equal(t, "First post", post.Title)
	if assert.NotNil(t, post.UserId) {
		assert.Equal(t, ownerId, *post.UserId)
	}

	err = service.Update(post.Id, &forms.Post{Title: "First post, edited", Content: "Hello again!"})
	assert.NoError(t, err)
	updated, err := service.Post(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, "First post, edited", updated.Title)

	assert.NoError(t, service.Delete(post.Id))
	_, err = service.Post(post.Id)
	assert.True(t, database.IsNotFound(err))

	// Deleting again reports not-found, deletion is not silently idempotent.
	err = service.Delete(post.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestPostRubricReference(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	rubricService := PostRubricService{}
	ownerId := registerUser(t, "author")

	assert.NoError(t, rubricService.Create(ownerId, &forms.Rubric{Title: "Essays"}))
	rubrics, err := rubricService.Rubrics()
	assert.NoError(t, err)
	assert.Len(t, rubrics, 1)
	rubricId := rubrics[0].Id

	assert.NoError(t, postService.Create(ownerId, &forms.Post{
		Title:    "Categorized",
		Content:  "Belongs to Essays",
		RubricId: &rubricId,
	}))

	// A dangling rubric reference is a store-level conflict, not a crash.
	missing := rubricId + 100
	err = postService.Create(ownerId, &forms.Post{
		Title:    "Dangling",
		Content:  "Points nowhere",
		RubricId: &missing,
	})
	assert.True(t, database.IsConstraintViolation(err))
}

func TestPostFilters(t *testing.T) {
	setup()
	defer teardown()

	postService := PostService{}
	rubricService := PostRubricService{}
	alice := registerUser(t, "alice")
	bob := registerUser(t, "bob")

	assert.NoError(t, rubricService.Create(alice, &forms.Rubric{Title: "Travel"}))
	rubrics, _ := rubricService.Rubrics()
	travel := rubrics[0].Id

	assert.NoError(t, postService.Create(alice, &forms.Post{Title: "Mountains in May", Content: "Climbing diary", RubricId: &travel}))
	assert.NoError(t, postService.Create(alice, &forms.Post{Title: "Recipes", Content: "Pasta and bread"}))
	assert.NoError(t, postService.Create(bob, &forms.Post{Title: "Sea trip", Content: "Sailing log", RubricId: &travel}))

	// By rubric.
	byRubric, err := postService.Posts(PostFilter{RubricId: &travel, Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, byRubric, 2)

	// By keyword, matching title or content.
	byKeyword, err := postService.Posts(PostFilter{Keyword: "pasta", Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, byKeyword, 1)
	assert.Equal(t, "Recipes", byKeyword[0].Title)

	// By author.
	byAuthor, err := postService.Posts(PostFilter{UserId: bob, Page: 1, PerPage: 10})
	assert.NoError(t, err)
	assert.Len(t, byAuthor, 1)
	assert.Equal(t, "Sea trip", byAuthor[0].Title)

	// Count honors the same filter.
	count, err := postService.Count(PostFilter{RubricId: &travel})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPostPaging(t *testing.T) {
	setup()
	defer teardown()

	service := PostService{}
	ownerId := registerUser(t, "prolific")

	for i := 0; i < 5; i++ {
		assert.NoError(t, service.Create(ownerId, &forms.Post{
			Title:   "Numbered post",
			Content: "Body of the post",
		}))
	}

	first, err := service.Posts(PostFilter{Page: 1, PerPage: 2})
	assert.NoError(t, err)
	assert.Len(t, first, 2)

	third, err := service.Posts(PostFilter{Page: 3, PerPage: 2})
	assert.NoError(t, err)
	assert.Len(t, third, 1)

	beyond, err := service.Posts(PostFilter{Page: 4, PerPage: 2})
	assert.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestPostAuthenticateOwner(t *testing.T) {
	setup()
	defer teardown()

	service := PostService{}
	owner := registerUser(t, "owner")
	intruder := registerUser(t, "intruder")

	assert.NoError(t, service.Create(owner, &forms.Post{Title: "Mine alone", Content: "Private property"}))
	posts, _ := service.Posts(PostFilter{Page: 1, PerPage: 10})
	postId := posts[0].Id

	post, err := service.AuthenticateOwner(postId, owner)
	assert.NoError(t, err)
	assert.Equal(t, "Mine alone", post.Title)

	_, err = service.AuthenticateOwner(postId, intruder)
	assert.ErrorIs(t, err, ErrNotOwner)

	// A missing post reports not-found, not a failed ownership check.
	_, err = service.AuthenticateOwner(postId+100, owner)
	assert.True(t, database.IsNotFound(err))
}

func TestRandomPost(t *testing.T) {
	setup()
	defer teardown()

	service := PostService{}

	// No posts at all: not-found.
	_, err := service.RandomPost()
	assert.True(t, database.IsNotFound(err))

	ownerId := registerUser(t, "author")
	assert.NoError(t, service.Create(ownerId, &forms.Post{Title: "The only one", Content: "Always picked"}))

	post, err := service.RandomPost()
	assert.NoError(t, err)
	assert.Equal(t, "The only one", post.Title)
}

func TestPostRubricOwnership(t *testing.T) {
	setup()
	defer teardown()

	service := PostRubricService{}
	owner := registerUser(t, "owner")
	intruder := registerUser(t, "intruder")

	assert.NoError(t, service.Create(owner, &forms.Rubric{Title: "Owned"}))
	rubrics, _ := service.Rubrics()
	rubricId := rubrics[0].Id

	_, err := service.AuthenticateOwner(rubricId, owner)
	assert.NoError(t, err)
	_, err = service.AuthenticateOwner(rubricId, intruder)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestAuthenticateOwnerSeesOwnerChanges(t *testing.T) {
	setup()
	defer teardown()

	service := PostService{}
	before := registerUser(t, "before")
	after := registerUser(t, "after")

	assert.NoError(t, service.Create(before, &forms.Post{Title: "Handed over", Content: "Changing hands"}))
	posts, _ := service.Posts(PostFilter{Page: 1, PerPage: 10})
	postId := posts[0].Id

	_, err := service.AuthenticateOwner(postId, before)
	assert.NoError(t, err)

	// Ownership is re-read from the store on every call, so a change is
	// visible immediately; nothing is cached from the previous check.
	err = database.GetDB().Model(&posts[0]).Update("user_id", after).Error
	assert.NoError(t, err)

	_, err = service.AuthenticateOwner(postId, before)
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = service.AuthenticateOwner(postId, after)
	assert.NoError(t, err)
}
