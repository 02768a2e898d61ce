package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"covoit/pkg/utils"
)

const (
	ContextUserID  = "user_id"
	ContextRole    = "Role"
	ContextSession = "session"
	ContextToken   = "token"
)

// SessionResolver turns a bearer token into the caller's session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*utils.Session, error)
}

func JWTAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID.String())
		c.Set(ContextRole, session.Role)
		c.Set(ContextSession, session)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionFrom returns the session stored by JWTAuthMiddleware, or nil.
func SessionFrom(c *gin.Context) *utils.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*utils.Session)
	return s
}
