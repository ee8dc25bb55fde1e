package payment

import (
	"errors"
	"math"
	"net/http"
	"time"

	"sibi-cuisine/dto"
	"sibi-cuisine/middleware"
	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func PaymentController(router *gin.Engine, payments services.PaymentStore, intents services.PaymentIntents, secret []byte, logger zerolog.Logger) {
	router.POST("/create-payment-intent", middleware.AccessToken(secret), func(c *gin.Context) {
		CreatePaymentIntent(c, intents, logger)
	})
	router.POST("/payments", middleware.AccessToken(secret), func(c *gin.Context) {
		FinalizePayment(c, payments, logger)
	})
}

// CreatePaymentIntent converts the major-unit price to cents and asks the
// processor for an intent. The price must be a positive finite number.
func CreatePaymentIntent(c *gin.Context, intents services.PaymentIntents, logger zerolog.Logger) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Price <= 0 || math.IsInf(req.Price, 0) || math.IsNaN(req.Price) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	amount := int64(math.Round(req.Price * 100))
	clientSecret, err := intents.Create(c.Request.Context(), amount, "usd")
	if err != nil {
		logger.Error().Err(err).Float64("price", req.Price).Msg("payment intent creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateIntentResponse{ClientSecret: clientSecret})
}

// FinalizePayment records the payment and clears the referenced cart items
// in one transaction, then reports both results to the caller.
func FinalizePayment(c *gin.Context, payments services.PaymentStore, logger zerolog.Logger) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if payment.Email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	insertedID, deleted, err := payments.Finalize(c.Request.Context(), payment)
	if errors.Is(err, services.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("email", payment.Email).Msg("payment finalize failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, dto.FinalizeResponse{
		InsertResult: dto.InsertResult{InsertedID: insertedID},
		DeleteResult: dto.DeleteResult{DeletedCount: deleted},
	})
}
