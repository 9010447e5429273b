package middleware

import (
	"marceneiro/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the Accept-Language header for the handlers. The
// raw header is kept; the localizer parses quality values itself.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.DefaultLanguage
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.DefaultLanguage
}
