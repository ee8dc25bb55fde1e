package auth

import (
	"net/http"

	"sibi-cuisine/dto"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

func TokenController(router *gin.Engine, secret []byte) {
	router.POST("/jwt", func(c *gin.Context) {
		IssueToken(c, secret)
	})
}

// IssueToken signs the caller-supplied identity into a one-hour access
// token. The identity is trusted as-is; there is no credential check here.
func IssueToken(c *gin.Context, secret []byte) {
	var identity dto.TokenRequest
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, err := services.CreateAccessToken(secret, identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
