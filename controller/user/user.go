package user

import (
	"errors"
	"net/http"
	"time"

	"sibi-cuisine/dto"
	"sibi-cuisine/middleware"
	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

func UserController(router *gin.Engine, users services.UserStore, secret []byte) {
	router.GET("/users", middleware.AccessToken(secret), middleware.AdminOnly(users), func(c *gin.Context) {
		ListUsers(c, users)
	})
	router.GET("/users/admin/:email", middleware.AccessToken(secret), func(c *gin.Context) {
		AdminStatus(c, users)
	})
	router.POST("/users", func(c *gin.Context) {
		CreateUser(c, users)
	})
	router.PATCH("/users/admin/:id", middleware.AccessToken(secret), middleware.AdminOnly(users), func(c *gin.Context) {
		PromoteUser(c, users)
	})
}

func ListUsers(c *gin.Context, users services.UserStore) {
	result, err := users.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	if result == nil {
		result = []model.User{}
	}
	c.JSON(http.StatusOK, result)
}

// AdminStatus tells a user whether they are an admin. Asking about anyone
// else's email answers {admin: false} with 200 rather than an authorization
// failure; that asymmetry is part of the contract.
func AdminStatus(c *gin.Context, users services.UserStore) {
	email := c.Param("email")
	if c.GetString("email") != email {
		c.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: false})
		return
	}

	user, err := users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	admin := user != nil && user.Role == model.RoleAdmin
	c.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: admin})
}

// CreateUser upserts by email: a second call with the same email performs
// no insert and reports the conflict in the body.
func CreateUser(c *gin.Context, users services.UserStore) {
	var newUser model.User
	if err := c.ShouldBindJSON(&newUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	existing, err := users.FindByEmail(c.Request.Context(), newUser.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already Exist"})
		return
	}

	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = time.Now()
	}

	id, err := users.Insert(c.Request.Context(), newUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func PromoteUser(c *gin.Context, users services.UserStore) {
	modified, err := users.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
