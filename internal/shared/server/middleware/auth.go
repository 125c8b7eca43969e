package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/shared/server/respond"
)

const (
	supervisorIDKey = "supervisorId"

	// SessionCookie carries the signed-in supervisor's id. Sign-in is a mock
	// flow for this deployment; the cookie is the whole session.
	SessionCookie = "supervisor_session"
)

// Auth requires the supervisor session cookie and stores the supervisor id in
// context. Sign-in/out and operational endpoints are public.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/auth/") ||
			path == "/api/v1/health" ||
			path == "/api/v1/metrics" {
			c.Next()
			return
		}

		supervisorID, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(supervisorID) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Sign in required", nil)
			return
		}

		c.Set(supervisorIDKey, supervisorID)
		c.Next()
	}
}

// SupervisorIDFromContext fetches the supervisor id stored by Auth.
func SupervisorIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(supervisorIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
