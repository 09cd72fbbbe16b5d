package botengine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/controller/keyboard"
	"github.com/itmaschool/attendance-admin/internal/controller/state"
)

// Callback data бота. Формат "action" или "action:targetId",
// строки исторические — ими размечены уже разосланные клавиатуры.
const (
	MainMenu     = "main_menu"
	ListTeachers = "list_teachers"
	BackToList   = "back_to_list"
	StartAdd     = "start_add"
	NewsStep1    = "news_step1"
	NewsList     = "news_list"

	Manage       = "manage"        // manage:<id>
	EditName     = "edit_name"     // edit_name:<id>
	EditClass    = "edit_class"    // edit_class:<id>
	EditLogin    = "edit_login"    // edit_login:<id>
	EditPassword = "edit_password" // edit_password:<id>
	ConfirmDel   = "confirm_del"   // confirm_del:<id>
	DelNews      = "del_news"      // del_news:<id>
)

// handleCallback разбирает callback data один раз на границе
// и передаёт типизированный target в обработчик
func (e *Engine) handleCallback(ctx context.Context, chatID int64, data string) {
	action, target, _ := strings.Cut(data, ":")

	e.logger.Info("Routing callback",
		zap.Int64("chat_id", chatID),
		zap.String("action", action))

	switch action {
	case MainMenu:
		e.notifier.Send(ctx, chatID, "🎮 Меню:", mainMenu())

	case ListTeachers, BackToList:
		e.showAccountList(ctx, chatID)

	case Manage:
		e.showAccountCard(ctx, chatID, target)

	case EditName:
		e.startEdit(ctx, chatID, "name", target, "✏️ Введите новое имя:")
	case EditClass:
		e.startEdit(ctx, chatID, "class", target, "🏫 Введите новый класс:")
	case EditLogin:
		e.startEdit(ctx, chatID, "login", target, "👤 Введите новый логин:")
	case EditPassword:
		e.startEdit(ctx, chatID, "password", target, "🔑 Введите новый пароль:")

	case ConfirmDel:
		// Несмотря на имя, подтверждения нет: удаляем сразу
		if err := e.accounts.Delete(ctx, target); err != nil {
			e.logger.Error("Failed to delete account", zap.String("account_id", target), zap.Error(err))
			return
		}
		e.notifier.Send(ctx, chatID, "✅ Удалено.", nil)

	case StartAdd:
		e.sessions.Set(chatID, state.Pending{Action: state.ActionAddAccount})
		e.notifier.Send(ctx, chatID, "📝 Введите: `логин пароль имя класс` (через пробел)", nil)

	case NewsStep1:
		e.sessions.Set(chatID, state.Pending{Action: state.ActionNewsText})
		e.notifier.Send(ctx, chatID, "✍️ Введите текст новости:", nil)

	case NewsList:
		e.showNewsList(ctx, chatID)

	case DelNews:
		if err := e.news.Delete(ctx, target); err != nil {
			e.logger.Error("Failed to delete news item", zap.String("news_id", target), zap.Error(err))
			return
		}
		e.notifier.Send(ctx, chatID, "✅ Удалено!",
			keyboard.NewBuilder().Row(keyboard.Button("⬅️", NewsList)).Build())

	default:
		e.logger.Warn("Unknown callback action", zap.String("action", action))
	}
}

// showAccountList показывает всех учителей, по кнопке на каждого
func (e *Engine) showAccountList(ctx context.Context, chatID int64) {
	accounts, err := e.accounts.List(ctx)
	if err != nil {
		e.logger.Error("Failed to list accounts", zap.Error(err))
		return
	}

	kb := keyboard.NewBuilder()
	for _, a := range accounts {
		label := fmt.Sprintf("%s (%s)", a.Name, a.ClassName)
		kb.Row(keyboard.Button(label, Manage+":"+a.ID.Hex()))
	}
	kb.Row(keyboard.Button("➕ Добавить", StartAdd))
	kb.Row(keyboard.Button("⬅️ Меню", MainMenu))

	e.notifier.Send(ctx, chatID, "👨‍🏫 Список:", kb.Build())
}

// showAccountCard показывает карточку учителя с меню действий
func (e *Engine) showAccountCard(ctx context.Context, chatID int64, id string) {
	account, err := e.accounts.GetByID(ctx, id)
	if err != nil {
		e.logger.Error("Failed to get account", zap.String("account_id", id), zap.Error(err))
		return
	}
	if account == nil {
		// Уже удалён — молча выходим
		return
	}

	text := fmt.Sprintf("👤 **%s**\nКласс: %s", account.Name, account.ClassName)

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("✏️ Имя", EditName+":"+id),
			keyboard.Button("🏫 Класс", EditClass+":"+id),
		).
		Row(
			keyboard.Button("👤 Логин", EditLogin+":"+id),
			keyboard.Button("🔑 Пароль", EditPassword+":"+id),
		).
		Row(keyboard.Button("🗑 Удалить", ConfirmDel+":"+id)).
		Row(keyboard.Button("⬅️ Назад", BackToList)).
		Build()

	e.notifier.Send(ctx, chatID, text, kb)
}

// startEdit запоминает, какое поле какого аккаунта ждём, и просит значение
func (e *Engine) startEdit(ctx context.Context, chatID int64, field, targetID, prompt string) {
	e.sessions.Set(chatID, state.Pending{
		Action:   state.ActionEditField,
		Field:    field,
		TargetID: targetID,
	})
	e.notifier.Send(ctx, chatID, prompt, nil)
}

// showNewsList показывает активные объявления, по кнопке удаления на каждое
func (e *Engine) showNewsList(ctx context.Context, chatID int64) {
	items, err := e.news.List(ctx)
	if err != nil {
		e.logger.Error("Failed to list news", zap.Error(err))
		return
	}

	kb := keyboard.NewBuilder()
	for _, n := range items {
		kb.Row(keyboard.Button("🗑 "+truncate(n.Text, 20)+"...", DelNews+":"+n.ID.Hex()))
	}
	kb.Row(keyboard.Button("⬅️ Меню", MainMenu))

	e.notifier.Send(ctx, chatID, "📝 Активные новости:", kb.Build())
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
