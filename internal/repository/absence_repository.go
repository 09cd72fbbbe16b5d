package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itmaschool/attendance-admin/internal/model"
	"github.com/itmaschool/attendance-admin/internal/storage"
)

type AbsenceRepository struct {
	coll *mongo.Collection
}

func NewAbsenceRepository(db *mongo.Database) *AbsenceRepository {
	return &AbsenceRepository{coll: db.Collection(storage.AbsencesCollection)}
}

// Create сохраняет отчёт о пропусках
func (r *AbsenceRepository) Create(ctx context.Context, record *model.AbsenceRecord) error {
	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("create absence record: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}
	return nil
}

// List возвращает все отчёты, новые даты первыми
func (r *AbsenceRepository) List(ctx context.Context) ([]model.AbsenceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list absence records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []model.AbsenceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode absence records: %w", err)
	}

	return records, nil
}

// Update применяет частичное обновление и возвращает обновлённый документ
func (r *AbsenceRepository) Update(ctx context.Context, id string, fields bson.M) (*model.AbsenceRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse absence id: %w", err)
	}

	// _id менять нельзя
	delete(fields, "_id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record model.AbsenceRecord
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update absence record: %w", err)
	}

	return &record, nil
}

// Delete удаляет отчёт по hex идентификатору
func (r *AbsenceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse absence id: %w", err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete absence record: %w", err)
	}

	return nil
}
