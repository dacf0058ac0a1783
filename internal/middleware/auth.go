package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const userIDContextKey = "user_id"

// Auth returns a gin middleware that requires a valid Bearer token on every
// request whose path is not in publicPaths. On success the token subject is
// stored in the gin.Context under "user_id".
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c)
			return
		}

		parsed, err := jwtSvc.ValidateAndParse(token)
		if err != nil || parsed == nil {
			unauthorized(c)
			return
		}

		c.Set(userIDContextKey, parsed.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin.Context.
// Returns an empty string for anonymous requests.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(userIDContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "unauthorized",
		"data":    nil,
	})
}
