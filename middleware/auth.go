package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/session"
)

// Context keys set by ResolveSession
const (
	ContextSession = "session"
	ContextToken   = "session_token"
)

// ResolveSession extracts the bearer token, resolves it to a session and
// stores both in the Gin context. Anonymous requests pass through with no
// session set; handlers that require one use RequireAuth or RequireAdmin.
func ResolveSession(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			c.Set(ContextToken, token)
			if sess, ok := resolver.Resolve(c.Request.Context(), token); ok {
				c.Set(ContextSession, sess)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts the request unless an authenticated session is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := GetSession(c); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts the request unless the session belongs to an admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := GetSession(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			c.Abort()
			return
		}
		if !sess.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin role required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession extracts the resolved session from the Gin context
func GetSession(c *gin.Context) (*session.Session, error) {
	value, exists := c.Get(ContextSession)
	if !exists {
		return nil, &AuthError{Code: "NO_SESSION", Message: "No session in context"}
	}

	sess, ok := value.(*session.Session)
	if !ok {
		return nil, &AuthError{Code: "INVALID_SESSION", Message: "Session is not in the expected format"}
	}
	return sess, nil
}

// SessionToken returns the raw bearer token, or "" for anonymous requests
func SessionToken(c *gin.Context) string {
	value, exists := c.Get(ContextToken)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}

// IsAdminRequest reports whether the request carries an admin session
func IsAdminRequest(c *gin.Context) bool {
	sess, err := GetSession(c)
	return err == nil && sess.IsAdmin()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
