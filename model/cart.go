package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a pending-order line tied to one user. Price is a snapshot
// taken when the item was added, not a reference to the live menu price.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId" binding:"required"`
	Email      string             `bson:"email" json:"email" binding:"required,email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}
