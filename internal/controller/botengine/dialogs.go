package botengine

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/controller/state"
	"github.com/itmaschool/attendance-admin/internal/model"
)

// handleText обрабатывает текстовое сообщение по текущему состоянию чата.
// Диалоги короткие: один шаг, у создания новости — два.
func (e *Engine) handleText(ctx context.Context, chatID int64, text string) {
	pending, ok := e.sessions.Get(chatID)
	if !ok {
		if text == "/start" {
			e.notifier.Send(ctx, chatID, "🎮 Управление:", mainMenu())
		}
		// Текст без активного диалога игнорируем
		return
	}

	switch pending.Action {
	case state.ActionEditField:
		e.finishEdit(ctx, chatID, pending, text)
	case state.ActionAddAccount:
		e.finishAdd(ctx, chatID, text)
	case state.ActionNewsText:
		// Первый шаг: запоминаем текст, спрашиваем срок
		e.sessions.Set(chatID, state.Pending{Action: state.ActionNewsDays, NewsText: text})
		e.notifier.Send(ctx, chatID, "⏳ На сколько дней?", nil)
	case state.ActionNewsDays:
		e.finishNews(ctx, chatID, pending, text)
	default:
		e.logger.Warn("Unknown pending action", zap.String("action", string(pending.Action)))
		e.sessions.Clear(chatID)
	}
}

// finishEdit применяет введённое значение к одному полю аккаунта
func (e *Engine) finishEdit(ctx context.Context, chatID int64, pending state.Pending, text string) {
	e.sessions.Clear(chatID)

	if err := e.accounts.UpdateField(ctx, pending.TargetID, pending.Field, text); err != nil {
		e.logger.Error("Failed to update account field",
			zap.String("account_id", pending.TargetID),
			zap.String("field", pending.Field),
			zap.Error(err))
		return
	}

	e.notifier.Send(ctx, chatID, "✅ Обновлено!", backToListMenu())
}

// finishAdd разбирает строку "логин пароль имя класс".
// Меньше четырёх слов — аккаунт не создаётся, но ответ уходит всё равно.
func (e *Engine) finishAdd(ctx context.Context, chatID int64, text string) {
	e.sessions.Clear(chatID)

	fields := strings.Fields(text)
	if len(fields) >= 4 {
		account := &model.Account{
			Login:     fields[0],
			Password:  fields[1],
			Name:      fields[2],
			ClassName: fields[3],
			Role:      model.RoleTeacher,
		}
		if err := e.accounts.Create(ctx, account); err != nil {
			e.logger.Error("Failed to create account", zap.String("login", account.Login), zap.Error(err))
			return
		}
	} else {
		e.logger.Warn("Add account line has too few fields", zap.Int("fields", len(fields)))
	}

	e.notifier.Send(ctx, chatID, "✅ Готово!", mainMenu())
}

// finishNews создаёт объявление: текст с первого шага плюс срок в днях.
// Непонятный или нулевой срок превращается в один день.
func (e *Engine) finishNews(ctx context.Context, chatID int64, pending state.Pending, text string) {
	e.sessions.Clear(chatID)

	days, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || days <= 0 {
		days = 1
	}

	now := time.Now()
	item := &model.NewsItem{
		Text:      pending.NewsText,
		CreatedAt: now,
		ExpireAt:  now.AddDate(0, 0, days),
	}
	if err := e.news.Create(ctx, item); err != nil {
		e.logger.Error("Failed to create news item", zap.Error(err))
		return
	}

	e.notifier.Send(ctx, chatID, "🚀 Опубликовано!", mainMenu())
}
