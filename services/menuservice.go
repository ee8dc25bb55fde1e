package services

import (
	"context"

	"sibi-cuisine/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuStore is the access layer for the menus collection.
type MenuStore interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	Insert(ctx context.Context, item model.MenuItem) (string, error)
	// DeleteByID reports zero deleted for an unknown id; that is not an error.
	DeleteByID(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type mongoMenuStore struct {
	coll *mongo.Collection
}

func NewMenuStore(db *mongo.Database) MenuStore {
	return &mongoMenuStore{coll: db.Collection("menus")}
}

func (s *mongoMenuStore) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoMenuStore) Insert(ctx context.Context, item model.MenuItem) (string, error) {
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *mongoMenuStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *mongoMenuStore) Count(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}
