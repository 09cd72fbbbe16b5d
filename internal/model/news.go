package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsItem — объявление с ограниченным сроком жизни.
// Просроченные записи удаляет сама база по TTL индексу на expireAt,
// приложение удаляет их только по явной команде из бота.
type NewsItem struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	ExpireAt  time.Time          `json:"expireAt" bson:"expireAt"`
}
