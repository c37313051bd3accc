package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
	"busriya/internal/domain"
	"busriya/internal/service"
)

const (
	// ContextRoleKey is the gin context key the resolved role is
	// stored under.
	ContextRoleKey = "sessionRole"

	// ContextSessionKey is the gin context key the resolved session
	// ID is stored under.
	ContextSessionKey = "sessionID"
)

// RequireSession returns middleware that resolves the bearer session
// ID, rejects requests without a valid session, and attaches the
// session's backend access token to the request context so gateway
// clients forward it.
func RequireSession(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		sessionID, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := auth.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(ContextSessionKey, session.ID)
		c.Set(ContextRoleKey, string(session.Role))
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), session.AccessToken))
		c.Next()
	}
}

// RequireRole returns middleware that allows only sessions whose
// decoded role is one of allowed. Must run after RequireSession.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	roles := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		roles[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := domain.Role(c.GetString(ContextRoleKey))
		if _, ok := roles[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}
