package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AbsenceRecord — отчёт о пропусках за день.
// Все поля строковые: формат задаёт фронтенд школы, сервер их не валидирует.
type AbsenceRecord struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Teacher     string             `json:"teacher" bson:"teacher"`
	ClassName   string             `json:"className" bson:"className"`
	Date        string             `json:"date" bson:"date"`
	Count       string             `json:"count" bson:"count"`
	StudentName string             `json:"studentName" bson:"studentName"`
	Reason      string             `json:"reason" bson:"reason"`
	AllStudents string             `json:"allstudents" bson:"allstudents"`
}
