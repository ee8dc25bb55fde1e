package dto

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// InsertResult and DeleteResult mirror the driver result shapes so the
// finalize response keeps the {insertResult, deleteResult} contract.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type FinalizeResponse struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}
