// middleware/session_id.go

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque session id.
const SessionCookie = "triage_session_id"

// ContextSessionID is the gin context key handlers read the id from.
const ContextSessionID = "sessionID"

// SessionID assigns an opaque session id to every request that does not
// already carry one, via cookie. The id is only an index into the session
// store; it carries no identity claims.
func SessionID(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(ContextSessionID, id)
		c.Next()
	}
}
