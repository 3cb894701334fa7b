package middlewares

import (
	"net/http"
	"strings"

	"archviz/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// TokenCookie is the cookie checked when no Authorization header is sent.
const TokenCookie = "Bearer"

// JWT admits requests carrying a valid admin token signed with secret.
func JWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusUnauthorized,
				"detail": "authorization token required",
			})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			log.WithError(err).Debug("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusUnauthorized,
				"detail": "invalid token",
			})
			return
		}

		if err := utils.AuthorizeRole(claims.Role, utils.RoleAdmin); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusUnauthorized,
				"detail": "admin role required",
			})
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}

// bearerToken reads "Authorization: Bearer <token>" and falls back to the
// Bearer cookie used by browsers.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
