package botengine

import (
	"github.com/go-telegram/bot/models"

	"github.com/itmaschool/attendance-admin/internal/controller/keyboard"
)

// mainMenu — главное меню администратора
func mainMenu() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("👨‍🏫 Учителя", ListTeachers)).
		Row(keyboard.Button("📢 Создать новость", NewsStep1)).
		Row(keyboard.Button("📝 Список объявлений", NewsList)).
		Build()
}

func backToListMenu() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("⬅️ К списку", BackToList)).
		Build()
}
