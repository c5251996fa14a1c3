package forms

// Credentials is the login and registration form. The same minimum length
// applies to both fields; see config.GetMinCredentialLen.
type Credentials struct {
	Login    string `form:"login" validate:"required,mincred,max=255"`
	Password string `form:"password" validate:"required,mincred,max=255"`
}

// NewLogin is the settings form for changing the account login.
type NewLogin struct {
	NewLogin string `form:"new_login" validate:"required,mincred,max=255"`
}

// NewPassword is the settings form for changing the account password.
type NewPassword struct {
	NewPassword string `form:"new_password" validate:"required,mincred,max=255"`
}

// Rubric covers creation and editing of both post and note rubrics.
type Rubric struct {
	Title string `form:"title" validate:"required,min=3,max=255"`
}

// Post covers creation and editing of a post. RubricId is optional; an empty
// selection posts as "" or "None" and stays nil.
type Post struct {
	Title    string `form:"title" validate:"required,min=5,max=255"`
	Content  string `form:"content" validate:"required,min=5"`
	RubricId *int   `form:"rubric_id"`
}

// Note covers creation and editing of a note.
type Note struct {
	Content  string `form:"content" validate:"required,min=3"`
	RubricId *int   `form:"rubric_id"`
}

// ListParams are the optional query filters of a listing page. Callers preset
// the defaults; BindQuery only overwrites what parses.
type ListParams struct {
	Page     int    `form:"page"`
	Quantity int    `form:"quantity"`
	RubricId *int   `form:"rubric"`
	Keyword  string `form:"keyword"`
}
