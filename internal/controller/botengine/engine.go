package botengine

import (
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/controller/state"
	"github.com/itmaschool/attendance-admin/internal/model"
	"github.com/itmaschool/attendance-admin/internal/notify"
)

// AccountStore — операции над аккаунтами учителей, нужные боту
type AccountStore interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
}

// NewsStore — операции над объявлениями, нужные боту
type NewsStore interface {
	Create(ctx context.Context, item *model.NewsItem) error
	List(ctx context.Context) ([]model.NewsItem, error)
	Delete(ctx context.Context, id string) error
}

// Engine обрабатывает события от Telegram: callback'и кнопок и текстовые
// сообщения. Ошибки хранилища и транспорта в чат не попадают никогда,
// только в лог.
type Engine struct {
	accounts AccountStore
	news     NewsStore
	sessions *state.Manager
	notifier notify.Notifier
	allowed  map[int64]struct{}
	logger   *zap.Logger
}

func NewEngine(
	accounts AccountStore,
	news NewsStore,
	sessions *state.Manager,
	notifier notify.Notifier,
	allowedIDs []int64,
	logger *zap.Logger,
) *Engine {
	allowed := make(map[int64]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = struct{}{}
	}

	return &Engine{
		accounts: accounts,
		news:     news,
		sessions: sessions,
		notifier: notifier,
		allowed:  allowed,
		logger:   logger,
	}
}

// HandleUpdate обрабатывает одно событие вебхука.
// События от отправителей вне allow-list молча отбрасываются —
// это единственная авторизация бота.
func (e *Engine) HandleUpdate(ctx context.Context, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		callback := update.CallbackQuery
		if !e.isAllowed(callback.From.ID) {
			e.logger.Debug("Callback from unknown sender dropped",
				zap.Int64("sender_id", callback.From.ID))
			return
		}

		msg := callback.Message.Message
		if msg == nil {
			return
		}
		e.handleCallback(ctx, msg.Chat.ID, callback.Data)

	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || !e.isAllowed(msg.From.ID) {
			return
		}
		e.handleText(ctx, msg.Chat.ID, msg.Text)
	}
}

func (e *Engine) isAllowed(senderID int64) bool {
	_, ok := e.allowed[senderID]
	return ok
}
