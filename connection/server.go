package connection

import (
	"context"
	"log"

	"sibi-cuisine/config"
	admincontroller "sibi-cuisine/controller/admin"
	authcontroller "sibi-cuisine/controller/auth"
	cartcontroller "sibi-cuisine/controller/cart"
	menucontroller "sibi-cuisine/controller/menu"
	paymentcontroller "sibi-cuisine/controller/payment"
	usercontroller "sibi-cuisine/controller/user"
	"sibi-cuisine/middleware"
	"sibi-cuisine/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg.Logger)

	db, err := MongoConnection(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := services.NewUserStore(db)
	menus := services.NewMenuStore(db)
	carts := services.NewCartStore(db)
	payments := services.NewPaymentStore(db)
	intents := services.NewStripeIntents(cfg.Stripe.SecretKey)
	secret := []byte(cfg.JWT.Secret)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery(), cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.TokenController(router, secret)
	usercontroller.UserController(router, users, secret)
	menucontroller.MenuController(router, menus, users, secret)
	cartcontroller.CartController(router, carts, secret)
	paymentcontroller.PaymentController(router, payments, intents, secret, logger)
	admincontroller.StatsController(router, users, menus, payments, secret)

	logger.Info().Str("addr", cfg.Server.Address()).Msg("server listening")
	if err := router.Run(cfg.Server.Address()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
