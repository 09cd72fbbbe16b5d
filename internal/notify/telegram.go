package notify

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Notifier отправляет сообщение в чат. Контракт "fire and forget":
// ошибка транспорта логируется и никогда не возвращается вызывающему,
// повторных попыток нет. Доступность бота не должна зависеть
// от доступности Telegram.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup)
}

// TelegramNotifier отправляет сообщения через Bot API
type TelegramNotifier struct {
	bot    *bot.Bot
	logger *zap.Logger
}

func NewTelegramNotifier(b *bot.Bot, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{bot: b, logger: logger}
}

// Send отправляет сообщение с Markdown разметкой.
// Без клавиатуры прячем reply keyboard, как делал старый бот.
func (n *TelegramNotifier) Send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	if markup == nil {
		markup = &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: markup,
	})
	if err != nil {
		n.logger.Error("Failed to send telegram message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
