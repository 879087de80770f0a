package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader carries the authenticated caller's id, set by the gateway in
// front of this service.
const UserIDHeader = "X-User-ID"

const callerKey = "callerID"

// Identity rejects requests without a valid caller id.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		id, err := uuid.Parse(raw)
		if raw == "" || err != nil {
			Error(c, ErrorUnauthenticated, "missing or invalid "+UserIDHeader+" header", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(callerKey, id)
		c.Next()
	}
}

// callerID returns the id stored by Identity.
func callerID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(callerKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
