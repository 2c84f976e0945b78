package middleware

import (
	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const LocaleKey = "locale"

// Locale negotiates the response locale from the "locale" query parameter,
// then the Accept-Language header, falling back to the bundle default.
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := bundle.Match(c.Query("locale"), c.GetHeader("Accept-Language"))
		c.Set(LocaleKey, tag)
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// GetLocale retrieves the negotiated locale from the context
func GetLocale(c *gin.Context) (language.Tag, bool) {
	v, exists := c.Get(LocaleKey)
	if !exists {
		return language.Und, false
	}
	tag, ok := v.(language.Tag)
	return tag, ok
}
