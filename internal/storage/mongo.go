package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Имена коллекций (исторические, менять нельзя — их читает фронтенд школы)
const (
	AccountsCollection = "users"
	AbsencesCollection = "absents_itma"
	NewsCollection     = "news_itma"
)

// Connect подключается к MongoDB и проверяет соединение
func Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client.Database("school"), nil
}

// EnsureIndexes создаёт индексы при старте.
// TTL индекс на expireAt: база сама удаляет просроченные новости,
// приложение их не трогает.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(NewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expireAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create news ttl index: %w", err)
	}

	return nil
}
