package services

import (
	"context"
	"fmt"

	"sibi-cuisine/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentStore is the access layer for the payments collection.
type PaymentStore interface {
	// Finalize inserts the payment record and removes the cart items it
	// references inside one session transaction. It returns the hex id of
	// the payment document and the number of cart items removed.
	Finalize(ctx context.Context, payment model.Payment) (string, int64, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
	Count(ctx context.Context) (int64, error)
}

type mongoPaymentStore struct {
	payments *mongo.Collection
	carts    *mongo.Collection
}

func NewPaymentStore(db *mongo.Database) PaymentStore {
	return &mongoPaymentStore{
		payments: db.Collection("payments"),
		carts:    db.Collection("carts"),
	}
}

func (s *mongoPaymentStore) Finalize(ctx context.Context, payment model.Payment) (string, int64, error) {
	ids := make([]primitive.ObjectID, 0, len(payment.CartItems))
	for _, hex := range payment.CartItems {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return "", 0, fmt.Errorf("cart item id %q: %w", hex, ErrInvalidID)
		}
		ids = append(ids, oid)
	}

	session, err := s.payments.Database().Client().StartSession()
	if err != nil {
		return "", 0, err
	}
	defer session.EndSession(ctx)

	var insertedID string
	var deleted int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		insertedID = insertedHex(res)

		del, err := s.carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		deleted = del.DeletedCount
		return nil, nil
	})
	if err != nil {
		return "", 0, err
	}
	return insertedID, deleted, nil
}

func (s *mongoPaymentStore) FindAll(ctx context.Context) ([]model.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var payments []model.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *mongoPaymentStore) Count(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}
