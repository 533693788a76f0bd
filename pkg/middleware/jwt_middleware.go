package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/session"
	"ecoquest/pkg/utils"
)

const (
	sessionKey = "session"
	// TokenQueryParam carries the token where headers cannot be set, such as
	// a browser websocket handshake.
	TokenQueryParam = "access_token"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (session.Session, error)
}

func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		s, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		// Pass session information to the next handler
		c.Set(sessionKey, s)
		c.Set("user_id", s.AccountID)
		c.Set("Role", s.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Query(TokenQueryParam)
}

// RoleMiddleware lets through sessions holding any of the given roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}

// CurrentSession returns the session stored by JWTAuthMiddleware.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
