package services

import (
	"context"

	"sibi-cuisine/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore is the access layer for the carts collection. Every operation
// is scoped to an owning email so one user can never touch another's cart.
type CartStore interface {
	FindByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Insert(ctx context.Context, item model.CartItem) (string, error)
	DeleteByIDForEmail(ctx context.Context, id, email string) (int64, error)
}

type mongoCartStore struct {
	coll *mongo.Collection
}

func NewCartStore(db *mongo.Database) CartStore {
	return &mongoCartStore{coll: db.Collection("carts")}
}

func (s *mongoCartStore) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCartStore) Insert(ctx context.Context, item model.CartItem) (string, error) {
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *mongoCartStore) DeleteByIDForEmail(ctx context.Context, id, email string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
