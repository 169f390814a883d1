package gateway

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"agrirent/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the gateway session ID
const SessionCookie = "session_id"

// sessionIDKey is the gin context key the middleware stores the session ID under
const sessionIDKey = "session_id"

// RequireSession gates protected routes on the presence of a live gateway
// session. Browser requests are redirected to the login view so protected
// pages never render; API requests get a 401.
func RequireSession(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		ok, err := sessions.Validate(c.Request.Context(), sessionID)
		if err != nil {
			slog.Warn("session validation failed",
				"error", err.Error(),
				"request_id", c.GetString("request_id"),
			)
			abortUnauthenticated(c)
			return
		}
		if !ok {
			abortUnauthenticated(c)
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// abortUnauthenticated ends the request without rendering protected content:
// a redirect for browsers, a 401 for API callers.
func abortUnauthenticated(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "unauthorized: login required",
	})
}

// wantsHTML reports whether the request came from a browser navigation
// rather than an API call.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// RequestIDMiddleware generates a unique request ID for log correlation
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware logs every request passing through the gateway
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rw := newResponseWriter(c.Writer)
		c.Writer = rw

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", float64(time.Since(start).Milliseconds()),
			"client_ip", c.ClientIP(),
			"response_size", rw.Size(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.Error("request failed", attrs...)
		case status >= 400:
			slog.Warn("request rejected", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}
