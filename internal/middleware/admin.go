package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/studioreel/website/internal/auth"
	"github.com/studioreel/website/pkg/response"
)

// RequireAdmin lets a request through only when its session cookie resolves to an admin session.
// Everyone else is redirected to the login page.
func RequireAdmin(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			response.Redirect(c, auth.LoginPath)
			c.Abort()
			return
		}
		s, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Redirect(c, auth.LoginPath)
			c.Abort()
			return
		}
		c.Set(auth.ContextSession, s)
		c.Next()
	}
}
