package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

type LogRepo interface {
	Append(ctx context.Context, entry *model.LogEntry) error
	ListByGame(ctx context.Context, gameID string) ([]*model.LogEntry, error)
}

type logRepo struct {
	collection *mongo.Collection
}

func NewLogRepo(db *mongo.Database) LogRepo {
	return &logRepo{
		collection: db.Collection("logs"),
	}
}

func (r *logRepo) Append(ctx context.Context, entry *model.LogEntry) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// ListByGame returns entries in canonical (round, phase, seq) order.
// Mongo cannot express day-before-night, so ordering is applied after
// the fetch rather than trusted to storage.
func (r *logRepo) ListByGame(ctx context.Context, gameID string) ([]*model.LogEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"gameId": gameID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.LogEntry
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	model.SortLogs(logs)
	return logs, nil
}
