package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sessionsvc "perfume-storefront/internal/service/session"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-Token"

type ctxKey string

const sessionCtxKey ctxKey = "sessionID"

// sessionMiddleware resolves the session token from X-Session-Token or a
// Bearer Authorization header and stores the session id on the request context.
func sessionMiddleware(svc sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("session token required"))
			return
		}
		sessionID, err := svc.Lookup(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessionsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("invalid session token"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("session lookup failed"))
			return
		}
		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, sessionID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(sessionHeader)); token != "" {
		return token
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey).(string)
	return id
}

func (h *handlers) createSession(c *gin.Context) {
	sess, err := h.deps.SessionSvc.Issue(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}
