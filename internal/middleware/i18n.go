// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get language from header
		lang := c.GetHeader("Accept-Language")

		// Parse language preference
		if lang != "" {
			// Handle cases like "id-ID,id;q=0.9,en;q=0.8"
			langs := strings.Split(lang, ",")
			if len(langs) > 0 {
				firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				// Convert common language codes
				switch firstLang {
				case "id", "id-ID", "in", "in-ID":
					lang = "id"
				case "en", "en-US", "en-GB":
					lang = "en"
				default:
					lang = "id" // Default to Indonesian
				}
			}
		} else {
			lang = "id" // Default language
		}

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}
