package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleTeacher — роль по умолчанию для новых аккаунтов
const RoleTeacher = "teacher"

// Account представляет аккаунт учителя в приложении
type Account struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Login     string             `json:"login" bson:"login"`
	Password  string             `json:"password" bson:"password"`
	Name      string             `json:"name" bson:"name"`
	ClassName string             `json:"className" bson:"className"`
	Role      string             `json:"role" bson:"role"`
}
