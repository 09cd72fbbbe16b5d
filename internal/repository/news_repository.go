package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itmaschool/attendance-admin/internal/model"
	"github.com/itmaschool/attendance-admin/internal/storage"
)

type NewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{coll: db.Collection(storage.NewsCollection)}
}

// Create сохраняет объявление. CreatedAt проставляется здесь,
// ExpireAt должен быть заполнен вызывающим.
func (r *NewsRepository) Create(ctx context.Context, item *model.NewsItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("create news item: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = id
	}
	return nil
}

// List возвращает все живые объявления (просроченные удаляет TTL индекс)
func (r *NewsRepository) List(ctx context.Context) ([]model.NewsItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.NewsItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}

	return items, nil
}

// Latest возвращает самое свежее объявление по дате создания
func (r *NewsRepository) Latest(ctx context.Context) (*model.NewsItem, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var item model.NewsItem
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest news: %w", err)
	}

	return &item, nil
}

// Delete удаляет объявление по hex идентификатору
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse news id: %w", err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete news item: %w", err)
	}

	return nil
}
