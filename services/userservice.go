package services

import (
	"context"
	"errors"

	"sibi-cuisine/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID marks a path identifier that is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// UserStore is the access layer for the users collection.
type UserStore interface {
	FindAll(ctx context.Context) ([]model.User, error)
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, user model.User) (string, error)
	PromoteToAdmin(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type mongoUserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) UserStore {
	return &mongoUserStore{coll: db.Collection("users")}
}

func (s *mongoUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Insert(ctx context.Context, user model.User) (string, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *mongoUserStore) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": model.RoleAdmin}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

// insertedHex extracts the hex id a driver insert generated.
func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
