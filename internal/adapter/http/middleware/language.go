package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/daveshb/taskload/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves the response language from the Accept-Language
// header and stores it in the request context for handlers and translators.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// resolveLanguage keeps only the primary subtag of the first listed language,
// so "es-CO,es;q=0.9" resolves to "es". Anything unparseable falls back to en.
func resolveLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return translator.LanguageEn
	}
	first := header
	if i := strings.IndexAny(first, ",;"); i >= 0 {
		first = first[:i]
	}
	if i := strings.Index(first, "-"); i >= 0 {
		first = first[:i]
	}
	first = strings.ToLower(strings.TrimSpace(first))
	if first == "" {
		return translator.LanguageEn
	}
	return first
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
