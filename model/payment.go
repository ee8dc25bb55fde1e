package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a finalized checkout. CartItems holds the hex ids of the
// cart documents that were paid for and removed from the cart collection.
// Payment documents are never mutated after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	CartItems     []string           `bson:"cartItems" json:"cartItems" binding:"required"`
	MenuItems     []string           `bson:"menuItems,omitempty" json:"menuItems,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
