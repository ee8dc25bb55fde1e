package menu

import (
	"errors"
	"net/http"

	"sibi-cuisine/middleware"
	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

func MenuController(router *gin.Engine, menus services.MenuStore, users services.UserStore, secret []byte) {
	router.GET("/menus", func(c *gin.Context) {
		ListMenus(c, menus)
	})
	router.POST("/menus", middleware.AccessToken(secret), middleware.AdminOnly(users), func(c *gin.Context) {
		CreateMenu(c, menus)
	})
	router.DELETE("/menus/:id", middleware.AccessToken(secret), middleware.AdminOnly(users), func(c *gin.Context) {
		DeleteMenu(c, menus)
	})
}

// ListMenus is the public catalog read; no token required.
func ListMenus(c *gin.Context, menus services.MenuStore) {
	result, err := menus.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	if result == nil {
		result = []model.MenuItem{}
	}
	c.JSON(http.StatusOK, result)
}

func CreateMenu(c *gin.Context, menus services.MenuStore) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := menus.Insert(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// DeleteMenu reports deletedCount 0 for an unknown id; a missing item is
// not distinguished from a successful no-op.
func DeleteMenu(c *gin.Context, menus services.MenuStore) {
	deleted, err := menus.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
