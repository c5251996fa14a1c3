// Package forms converts raw request data into typed records.
//
// Two policies share one field vocabulary (the `form` struct tag): Bind is
// for POSTed forms and rejects the submission with an aggregated
// ValidationError when anything is wrong; BindQuery is for URL query
// parameters and silently drops malformed values, because query strings are
// optional filter hints, not user submissions that deserve feedback.
package forms

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"thinker-ui/config"
	"thinker-ui/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := field.Tag.Get("form")
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})

	// Minimum credential length comes from configuration, see
	// config.GetMinCredentialLen, so it cannot live in a static `min=` tag.
	v.RegisterValidation("mincred", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= config.GetMinCredentialLen()
	})

	return v
}

// Bind fills dst from the POSTed form and validates it. On any problem it
// returns a *ValidationError carrying every bad field in declaration order;
// dst must then be considered garbage. Leading and trailing whitespace is not
// part of any value: a field that trims to nothing counts as missing.
func Bind(c *gin.Context, dst any) error {
	fields := setFields(dst, func(name string) (string, bool) {
		return c.GetPostForm(name)
	}, true)

	fields = append(fields, checkBounds(dst)...)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// BindQuery fills dst from the URL query string on a best-effort basis.
// Malformed values are logged and skipped; dst keeps whatever defaults the
// caller preset.
func BindQuery(c *gin.Context, dst any) {
	setFields(dst, func(name string) (string, bool) {
		return c.GetQuery(name)
	}, false)
}

// setFields walks dst's `form`-tagged fields in declaration order and coerces
// raw string values into them. In strict mode a coercion failure becomes a
// field error; otherwise it is dropped with a debug log line.
func setFields(dst any, lookup func(string) (string, bool), strict bool) []FieldError {
	var fields []FieldError

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("form")
		if tag == "" || tag == "-" {
			continue
		}

		raw, ok := lookup(tag)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				if strict {
					fields = append(fields, FieldError{Field: tag, Message: "must be a whole number"})
				} else {
					logger.Debugf("dropping query param %q: %q is not a whole number", tag, raw)
				}
				continue
			}
			field.SetInt(int64(n))
		case reflect.Pointer:
			// Optional reference. The web forms post "", "None" or "-1"
			// when nothing is selected; all of them mean nil.
			if raw == "" || raw == "None" || raw == "-1" {
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				if strict {
					fields = append(fields, FieldError{Field: tag, Message: "must be a whole number"})
				} else {
					logger.Debugf("dropping query param %q: %q is not a whole number", tag, raw)
				}
				continue
			}
			field.Set(reflect.ValueOf(&n))
		}
	}

	return fields
}

// checkBounds runs the declarative `validate` rules and translates the
// outcome into user-readable field errors.
func checkBounds(dst any) []FieldError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: "is invalid"}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: boundsMessage(fe)})
	}
	return fields
}

func boundsMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "mincred":
		return "must be at least " + strconv.Itoa(config.GetMinCredentialLen()) + " characters"
	}
	return "is invalid"
}
