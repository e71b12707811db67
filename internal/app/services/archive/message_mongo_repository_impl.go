package archive

import (
	"context"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageMongoRepository struct {
	collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Database, collectionName string) MessageArchiveRepository {
	return &messageMongoRepository{
		collection: db.Collection(collectionName),
	}
}

// EnsureIndexes creates the path+timestamp index the staff listing reads by.
func (r *messageMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "path", Value: 1}, {Key: "timestamp", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *messageMongoRepository) InsertMessage(ctx context.Context, message *models.ArchivedMessage) error {
	_, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// At-least-once delivery can replay a message; the archive
			// only needs it once.
			return nil
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *messageMongoRepository) FindMessagesByPath(ctx context.Context, path string, limit int64) ([]models.ArchivedMessage, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"path": path}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.ArchivedMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}
