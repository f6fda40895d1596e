package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

type FriendRepo interface {
	Create(ctx context.Context, friend *model.Friend) error
	ListByUser(ctx context.Context, userID string) ([]*model.Friend, error)
	GetForUser(ctx context.Context, id, userID string) (*model.Friend, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type friendRepo struct {
	collection *mongo.Collection
}

func NewFriendRepo(db *mongo.Database) FriendRepo {
	return &friendRepo{
		collection: db.Collection("friends"),
	}
}

func (r *friendRepo) Create(ctx context.Context, friend *model.Friend) error {
	_, err := r.collection.InsertOne(ctx, friend)
	return err
}

func (r *friendRepo) ListByUser(ctx context.Context, userID string) ([]*model.Friend, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var friends []*model.Friend
	if err := cursor.All(ctx, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *friendRepo) GetForUser(ctx context.Context, id, userID string) (*model.Friend, error) {
	var friend model.Friend
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&friend)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
