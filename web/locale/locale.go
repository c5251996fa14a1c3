// Package locale localizes the UI strings rendered into pages.
package locale

import (
	"embed"
	"io/fs"
	"strings"

	"thinker-ui/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const localizerKey = "localizer"

var (
	i18nBundle *i18n.Bundle

	// defaultLocalizer resolves to the fallback language. It is set once at
	// startup and never mutated, so it is safe to share between requests.
	defaultLocalizer *i18n.Localizer
)

// InitLocalizer loads every translation file from the embedded catalog.
// English is the fallback language.
func InitLocalizer(i18nFS embed.FS) error {
	i18nBundle = i18n.NewBundle(language.MustParse("en-US"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(i18nFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := i18nFS.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = i18nBundle.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return err
	}

	defaultLocalizer = i18n.NewLocalizer(i18nBundle)
	return nil
}

func localize(localizer *i18n.Localizer, key string, params []string) string {
	if localizer == nil {
		return key
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, "==", 2)
		if len(parts) == 2 {
			templateData[parts[0]] = parts[1]
		}
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		logger.Errorf("failed to localize message %q: %v", key, err)
		return key
	}
	return msg
}

// I18nWeb resolves a message key in the request's language, with optional
// "name==value" template params. Requests without a language of their own
// fall back to the default localizer.
func I18nWeb(c *gin.Context, key string, params ...string) string {
	localizer := defaultLocalizer
	if c != nil {
		if obj, ok := c.Get(localizerKey); ok {
			if l, ok := obj.(*i18n.Localizer); ok {
				localizer = l
			}
		}
	}
	return localize(localizer, key, params)
}

// LocalizerMiddleware picks the request language from the "lang" cookie or
// the Accept-Language header and stores the localizer on the request context,
// so concurrent requests never see each other's language.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string
		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		c.Set(localizerKey, i18n.NewLocalizer(i18nBundle, lang))
		c.Next()
	}
}
