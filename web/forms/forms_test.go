package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postContext(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestBindValidPost(t *testing.T) {
	c := postContext(url.Values{
		"title":     {"A proper title"},
		"content":   {"Long enough content"},
		"rubric_id": {"3"},
	})

	form := &Post{}
	err := Bind(c, form)
	assert.NoError(t, err)
	assert.Equal(t, "A proper title", form.Title)
	assert.Equal(t, "Long enough content", form.Content)
	if assert.NotNil(t, form.RubricId) {
		assert.Equal(t, 3, *form.RubricId)
	}
}

func TestBindAggregatesAllErrors(t *testing.T) {
	// Both fields are bad; both must be reported in one pass.
	c := postContext(url.Values{
		"title":   {"abc"},
		"content": {"x"},
	})

	form := &Post{}
	err := Bind(c, form)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "title", verr.Fields[0].Field)
	assert.Equal(t, "content", verr.Fields[1].Field)
}

func TestBindMissingFields(t *testing.T) {
	c := postContext(url.Values{})

	form := &Post{}
	err := Bind(c, form)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	for _, fe := range verr.Fields {
		assert.Equal(t, "is required", fe.Message)
	}
}

func TestBindIsDeterministic(t *testing.T) {
	// The same bad input yields an identical report every time.
	values := url.Values{"title": {"ab"}, "content": {""}}

	first := Bind(postContext(values), &Post{})
	second := Bind(postContext(values), &Post{})
	assert.Equal(t, first.(*ValidationError).Message(), second.(*ValidationError).Message())
}

func TestBindRejectsNonNumericReference(t *testing.T) {
	c := postContext(url.Values{
		"title":     {"A proper title"},
		"content":   {"Long enough content"},
		"rubric_id": {"banana"},
	})

	err := Bind(c, &Post{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "rubric_id", verr.Fields[0].Field)
	assert.Equal(t, "must be a whole number", verr.Fields[0].Message)
}

func TestBindEmptyReferenceMarkers(t *testing.T) {
	// The web forms post "", "None" or "-1" when no rubric is selected.
	for _, marker := range []string{"", "None", "-1"} {
		c := postContext(url.Values{
			"content":   {"a note body"},
			"rubric_id": {marker},
		})

		form := &Note{}
		assert.NoError(t, Bind(c, form), "marker %q", marker)
		assert.Nil(t, form.RubricId, "marker %q", marker)
	}
}

func TestBindTrimsWhitespace(t *testing.T) {
	c := postContext(url.Values{"title": {"  my rubric  "}})

	form := &Rubric{}
	assert.NoError(t, Bind(c, form))
	assert.Equal(t, "my rubric", form.Title)
}

func TestBindWhitespaceOnlyIsMissing(t *testing.T) {
	c := postContext(url.Values{"title": {"   \t  "}})

	err := Bind(c, &Rubric{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "is required", verr.Fields[0].Message)
}

func TestBindCredentialLength(t *testing.T) {
	c := postContext(url.Values{
		"login":    {"abcd"},
		"password": {"ok-password"},
	})

	err := Bind(c, &Credentials{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "login", verr.Fields[0].Field)
}

func TestBindQueryDropsBadValues(t *testing.T) {
	c := queryContext("page=oops&quantity=7&rubric=banana&keyword=go")

	params := &ListParams{Page: 1}
	BindQuery(c, params)

	// Bad values are skipped, good ones land, presets survive.
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 7, params.Quantity)
	assert.Nil(t, params.RubricId)
	assert.Equal(t, "go", params.Keyword)
}

func TestBindQueryIgnoresAbsentParams(t *testing.T) {
	c := queryContext("")

	params := &ListParams{Page: 2, Quantity: 10}
	BindQuery(c, params)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Quantity)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "content", Message: "must be at least 5 characters"},
	}}
	msg := verr.Message()
	assert.Contains(t, msg, "title - is required")
	assert.Contains(t, msg, "content - must be at least 5 characters")
}
