package http

import (
	"net/http"
	"strings"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/jwt"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"

	identityContextKey = "identity"
)

// NewAuthMiddleware parses the bearer token and stores the resolved identity
// in the request context. Requests without a valid token stop here with 401.
func NewAuthMiddleware(secret []byte, tokenParser jwt.TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(identityContextKey, domain.Identity{
			AccountID: claims.AccountID,
			Username:  claims.Username,
			Role:      role,
		})
		c.Next()
	}
}

func identityFromContext(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return domain.Identity{}, false
	}

	identity, ok := value.(domain.Identity)
	return identity, ok
}
