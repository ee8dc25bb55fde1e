package cart

import (
	"errors"
	"net/http"

	"sibi-cuisine/middleware"
	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

func CartController(router *gin.Engine, carts services.CartStore, secret []byte) {
	routes := router.Group("/carts", middleware.AccessToken(secret))
	{
		routes.GET("", func(c *gin.Context) {
			ListCart(c, carts)
		})
		routes.POST("", func(c *gin.Context) {
			AddToCart(c, carts)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteCartItem(c, carts)
		})
	}
}

func ListCart(c *gin.Context, carts services.CartStore) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []model.CartItem{})
		return
	}
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	items, err := carts.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if items == nil {
		items = []model.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart only accepts items owned by the caller.
func AddToCart(c *gin.Context, carts services.CartStore) {
	var item model.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if item.Email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	id, err := carts.Insert(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// DeleteCartItem deletes by id scoped to the caller's email, so a foreign
// or unknown id reports deletedCount 0 rather than an error.
func DeleteCartItem(c *gin.Context, carts services.CartStore) {
	deleted, err := carts.DeleteByIDForEmail(c.Request.Context(), c.Param("id"), c.GetString("email"))
	if errors.Is(err, services.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
