package state

// Action определяет, какой ввод бот ждёт от чата следующим
type Action string

const (
	ActionNone Action = "" // Нет активного диалога

	// Добавление учителя одной строкой "логин пароль имя класс"
	ActionAddAccount Action = "add_account"

	// Редактирование одного поля аккаунта
	ActionEditField Action = "edit_field"

	// Создание новости: сначала текст, потом срок в днях
	ActionNewsText Action = "news_text"
	ActionNewsDays Action = "news_days"
)

// Pending — единственная незавершённая операция чата.
// На чат может существовать ровно одна: начало нового диалога
// молча затирает предыдущий.
type Pending struct {
	Action Action

	// Для ActionEditField: какое поле какого аккаунта редактируем
	Field    string
	TargetID string

	// Для ActionNewsDays: текст новости, собранный на первом шаге
	NewsText string
}
