package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itmaschool/attendance-admin/internal/model"
	"github.com/itmaschool/attendance-admin/internal/storage"
)

// Поля аккаунта, которые можно менять через диалог редактирования.
// Ключ — имя поля в callback data, значение — имя поля в документе.
var editableAccountFields = map[string]string{
	"name":     "name",
	"class":    "className",
	"login":    "login",
	"password": "password",
}

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(storage.AccountsCollection)}
}

// Create создаёт новый аккаунт. Пустая роль заменяется на "teacher".
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if account.Role == "" {
		account.Role = model.RoleTeacher
	}

	res, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = id
	}
	return nil
}

// GetByID получает аккаунт по hex идентификатору
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // Некорректный id — аккаунт не найден
	}

	var account model.Account
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return &account, nil
}

// GetByCredentials ищет аккаунт по точному совпадению логина и пароля
func (r *AccountRepository) GetByCredentials(ctx context.Context, login, password string) (*model.Account, error) {
	var account model.Account
	err := r.coll.FindOne(ctx, bson.M{"login": login, "password": password}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by credentials: %w", err)
	}

	return &account, nil
}

// List возвращает все аккаунты
func (r *AccountRepository) List(ctx context.Context) ([]model.Account, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []model.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	return accounts, nil
}

// UpdateField обновляет одно разрешённое поле аккаунта
func (r *AccountRepository) UpdateField(ctx context.Context, id, field, value string) error {
	docField, ok := editableAccountFields[field]
	if !ok {
		return fmt.Errorf("field %q is not editable", field)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse account id: %w", err)
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{docField: value}})
	if err != nil {
		return fmt.Errorf("update account field: %w", err)
	}

	return nil
}

// Delete удаляет аккаунт по hex идентификатору
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse account id: %w", err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	return nil
}
