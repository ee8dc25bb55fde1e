package middleware

import (
	"net/http"
	"strings"

	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

// AccessToken verifies the bearer token and puts the decoded identity on
// the request context. Missing, malformed, expired and badly signed tokens
// are all rejected as unauthorized.
func AccessToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		claims, err := services.ParseAccessToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set("claims", claims)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// AdminOnly checks the caller's stored role. It must run after AccessToken;
// the role comes from the users collection, not from the token, so a
// promotion or demotion takes effect on the next request.
func AdminOnly(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user role"})
			return
		}
		if user == nil || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}
