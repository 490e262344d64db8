package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "auth-token"

// Context keys set by the session gate for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserName  = "user_name"
)

// Session is the per-request authentication gate. It classifies the path,
// verifies the session cookie and either redirects, rejects or forwards the
// request with the caller's identity attached. It keeps no state between
// requests.
func Session(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		var claims *service.SessionClaims
		if tok, err := c.Cookie(CookieName); err == nil && tok != "" {
			parsed, err := service.VerifyToken(tok, secret)
			if err == nil {
				claims = parsed
			} else {
				AuthFailures.Inc()
			}
		}
		authenticated := claims != nil

		// Already logged in: keep users off the login/registration forms.
		if authenticated && (path == "/auth/login" || path == "/auth/register") {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		if isPrivatePath(path) && !authenticated {
			// API callers expect machine-readable status, page navigations
			// expect a redirect.
			if strings.HasPrefix(path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Unauthorized",
				})
				return
			}
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}

		if authenticated && strings.HasPrefix(path, "/api/tasks") {
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUserEmail, claims.Email)
			c.Set(CtxUserName, claims.Name)

			// Forwarded identity headers, kept as a documented fallback for
			// handlers that read them instead of the context.
			c.Request.Header.Set("x-user-id", claims.UserID)
			c.Request.Header.Set("x-user-email", claims.Email)
			c.Request.Header.Set("x-user-name", claims.Name)
		}

		c.Next()
	}
}

func isPrivatePath(path string) bool {
	return path == "/dashboard" || strings.HasPrefix(path, "/api/tasks")
}
