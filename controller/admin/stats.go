package admin

import (
	"net/http"

	"sibi-cuisine/dto"
	"sibi-cuisine/middleware"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
)

func StatsController(router *gin.Engine, users services.UserStore, menus services.MenuStore, payments services.PaymentStore, secret []byte) {
	router.GET("/admin-stats", middleware.AccessToken(secret), middleware.AdminOnly(users), func(c *gin.Context) {
		Stats(c, users, menus, payments)
	})
}

// Stats returns collection counts and total revenue. Revenue is the fold
// of price over every payment record; an empty collection sums to 0.
func Stats(c *gin.Context, users services.UserStore, menus services.MenuStore, payments services.PaymentStore) {
	ctx := c.Request.Context()

	userCount, err := users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}
	menuCount, err := menus.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count menu items"})
		return
	}
	paymentCount, err := payments.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count payments"})
		return
	}

	records, err := payments.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	var revenue float64
	for _, record := range records {
		revenue += record.Price
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Users:    userCount,
		Products: menuCount,
		Orders:   paymentCount,
		Revenue:  revenue,
	})
}
