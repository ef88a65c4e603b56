package utils

import (
	"github.com/gin-gonic/gin"
)

// Session is the authenticated caller, set once per request by the auth middleware.
type Session struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
}

type contextKey string

const SessionContextKey contextKey = "session"

func SetSession(c *gin.Context, session *Session) {
	c.Set(string(SessionContextKey), session)
}

func GetSession(c *gin.Context) *Session {
	value, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}
	if session, ok := value.(*Session); ok {
		return session
	}
	return nil
}

// CanMutate reports whether session may modify a resource owned by ownerID.
func CanMutate(ownerID uint, session *Session) bool {
	if session == nil {
		return false
	}
	return session.IsAdmin || session.UserID == ownerID
}
