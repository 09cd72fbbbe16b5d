package botengine

import (
	"context"
	"testing"
	"time"

	tgmodels "github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/controller/state"
	"github.com/itmaschool/attendance-admin/internal/model"
)

const (
	adminID     = int64(100)
	adminChatID = int64(200)
	strangerID  = int64(999)
)

type sentMessage struct {
	chatID int64
	text   string
	markup tgmodels.ReplyMarkup
}

type fakeNotifier struct {
	sent []sentMessage
}

func (f *fakeNotifier) Send(_ context.Context, chatID int64, text string, markup tgmodels.ReplyMarkup) {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, markup: markup})
}

type fieldUpdate struct {
	id    string
	field string
	value string
}

type fakeAccounts struct {
	existing []model.Account
	created  []model.Account
	updated  []fieldUpdate
	deleted  []string
}

func (f *fakeAccounts) Create(_ context.Context, account *model.Account) error {
	account.ID = primitive.NewObjectID()
	f.created = append(f.created, *account)
	return nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id string) (*model.Account, error) {
	for i := range f.existing {
		if f.existing[i].ID.Hex() == id {
			return &f.existing[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) List(_ context.Context) ([]model.Account, error) {
	return f.existing, nil
}

func (f *fakeAccounts) UpdateField(_ context.Context, id, field, value string) error {
	f.updated = append(f.updated, fieldUpdate{id: id, field: field, value: value})
	return nil
}

func (f *fakeAccounts) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNews struct {
	existing []model.NewsItem
	created  []model.NewsItem
	deleted  []string
}

func (f *fakeNews) Create(_ context.Context, item *model.NewsItem) error {
	item.ID = primitive.NewObjectID()
	f.created = append(f.created, *item)
	return nil
}

func (f *fakeNews) List(_ context.Context) ([]model.NewsItem, error) {
	return f.existing, nil
}

func (f *fakeNews) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type testEnv struct {
	engine   *Engine
	accounts *fakeAccounts
	news     *fakeNews
	notifier *fakeNotifier
	sessions *state.Manager
}

func newTestEnv() *testEnv {
	accounts := &fakeAccounts{}
	news := &fakeNews{}
	notifier := &fakeNotifier{}
	sessions := state.NewManager()

	engine := NewEngine(accounts, news, sessions, notifier, []int64{adminID}, zap.NewNop())

	return &testEnv{
		engine:   engine,
		accounts: accounts,
		news:     news,
		notifier: notifier,
		sessions: sessions,
	}
}

func textUpdate(fromID, chatID int64, text string) *tgmodels.Update {
	return &tgmodels.Update{
		Message: &tgmodels.Message{
			From: &tgmodels.User{ID: fromID},
			Chat: tgmodels.Chat{ID: chatID},
			Text: text,
		},
	}
}

func callbackUpdate(fromID, chatID int64, data string) *tgmodels.Update {
	return &tgmodels.Update{
		CallbackQuery: &tgmodels.CallbackQuery{
			From: tgmodels.User{ID: fromID},
			Data: data,
			Message: tgmodels.MaybeInaccessibleMessage{
				Message: &tgmodels.Message{
					Chat: tgmodels.Chat{ID: chatID},
				},
			},
		},
	}
}

func TestAccessGateDropsUnknownSenders(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.engine.HandleUpdate(ctx, textUpdate(strangerID, adminChatID, "/start"))
	env.engine.HandleUpdate(ctx, callbackUpdate(strangerID, adminChatID, StartAdd))
	env.engine.HandleUpdate(ctx, callbackUpdate(strangerID, adminChatID, ConfirmDel+":abc"))

	assert.Empty(t, env.notifier.sent)
	assert.Empty(t, env.accounts.deleted)
	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok)
}

func TestUnrecognizedTextWithoutPendingIsNoop(t *testing.T) {
	env := newTestEnv()

	env.engine.HandleUpdate(context.Background(), textUpdate(adminID, adminChatID, "какой-то текст"))

	assert.Empty(t, env.notifier.sent)
	assert.Empty(t, env.accounts.created)
	assert.Empty(t, env.news.created)
	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok)
}

func TestStartCommandShowsMainMenu(t *testing.T) {
	env := newTestEnv()

	env.engine.HandleUpdate(context.Background(), textUpdate(adminID, adminChatID, "/start"))

	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, adminChatID, env.notifier.sent[0].chatID)
	assert.Equal(t, "🎮 Управление:", env.notifier.sent[0].text)
	assert.NotNil(t, env.notifier.sent[0].markup)
}

func TestStartingNewFlowOverwritesPending(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, StartAdd))
	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, NewsStep1))

	pending, ok := env.sessions.Get(adminChatID)
	require.True(t, ok)
	assert.Equal(t, state.ActionNewsText, pending.Action)

	// Следующий текст идёт в диалог новости, а не в добавление учителя
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "Экзамен перенесён"))

	pending, ok = env.sessions.Get(adminChatID)
	require.True(t, ok)
	assert.Equal(t, state.ActionNewsDays, pending.Action)
	assert.Empty(t, env.accounts.created)
}

func TestNewsCreationTwoSteps(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, NewsStep1))
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "Экзамен перенесён"))
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "3"))

	require.Len(t, env.news.created, 1)
	item := env.news.created[0]
	assert.Equal(t, "Экзамен перенесён", item.Text)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), item.ExpireAt, time.Second)

	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok, "pending action must be cleared after publishing")

	last := env.notifier.sent[len(env.notifier.sent)-1]
	assert.Equal(t, "🚀 Опубликовано!", last.text)
}

func TestNewsDayCountFallsBackToOneDay(t *testing.T) {
	for _, input := range []string{"abc", "0", "-2", ""} {
		t.Run("input_"+input, func(t *testing.T) {
			env := newTestEnv()
			ctx := context.Background()

			env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, NewsStep1))
			env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "Текст"))
			env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, input))

			require.Len(t, env.news.created, 1)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), env.news.created[0].ExpireAt, time.Second)
		})
	}
}

func TestAddAccountFromFourTokenLine(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, StartAdd))
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "jdoe secret JaneDoe 5A"))

	require.Len(t, env.accounts.created, 1)
	account := env.accounts.created[0]
	assert.Equal(t, "jdoe", account.Login)
	assert.Equal(t, "secret", account.Password)
	assert.Equal(t, "JaneDoe", account.Name)
	assert.Equal(t, "5A", account.ClassName)
	assert.Equal(t, model.RoleTeacher, account.Role)

	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok)
}

func TestAddAccountSkipsShortLine(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, StartAdd))
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "onlylogin"))

	assert.Empty(t, env.accounts.created)
	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok)

	// Ответ уходит даже если ничего не создали
	last := env.notifier.sent[len(env.notifier.sent)-1]
	assert.Equal(t, "✅ Готово!", last.text)
}

func TestEditFlowUpdatesSingleField(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	id := primitive.NewObjectID()
	env.accounts.existing = []model.Account{{ID: id, Name: "Old", ClassName: "5A"}}

	env.engine.HandleUpdate(ctx, callbackUpdate(adminID, adminChatID, EditName+":"+id.Hex()))
	env.engine.HandleUpdate(ctx, textUpdate(adminID, adminChatID, "New Name"))

	require.Len(t, env.accounts.updated, 1)
	assert.Equal(t, fieldUpdate{id: id.Hex(), field: "name", value: "New Name"}, env.accounts.updated[0])

	_, ok := env.sessions.Get(adminChatID)
	assert.False(t, ok)
}

func TestConfirmDeleteRemovesAccountImmediately(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()

	env.engine.HandleUpdate(context.Background(), callbackUpdate(adminID, adminChatID, ConfirmDel+":"+id.Hex()))

	assert.Equal(t, []string{id.Hex()}, env.accounts.deleted)
	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, "✅ Удалено.", env.notifier.sent[0].text)
}

func TestManageUnknownAccountIsSilent(t *testing.T) {
	env := newTestEnv()

	env.engine.HandleUpdate(context.Background(),
		callbackUpdate(adminID, adminChatID, Manage+":"+primitive.NewObjectID().Hex()))

	assert.Empty(t, env.notifier.sent)
}

func TestAccountListRendersButtonPerAccount(t *testing.T) {
	env := newTestEnv()
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	env.accounts.existing = []model.Account{
		{ID: first, Name: "Анна", ClassName: "5A"},
		{ID: second, Name: "Борис", ClassName: "7B"},
	}

	env.engine.HandleUpdate(context.Background(), callbackUpdate(adminID, adminChatID, ListTeachers))

	require.Len(t, env.notifier.sent, 1)
	kb, ok := env.notifier.sent[0].markup.(*tgmodels.InlineKeyboardMarkup)
	require.True(t, ok)
	// Две кнопки учителей плюс "Добавить" и "Меню"
	require.Len(t, kb.InlineKeyboard, 4)
	assert.Equal(t, "Анна (5A)", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, Manage+":"+first.Hex(), kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, StartAdd, kb.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, MainMenu, kb.InlineKeyboard[3][0].CallbackData)
}

func TestNewsListTruncatesLabels(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.news.existing = []model.NewsItem{
		{ID: id, Text: "Очень длинный текст объявления для школы"},
	}

	env.engine.HandleUpdate(context.Background(), callbackUpdate(adminID, adminChatID, NewsList))

	require.Len(t, env.notifier.sent, 1)
	kb, ok := env.notifier.sent[0].markup.(*tgmodels.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "🗑 Очень длинный текст ...", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, DelNews+":"+id.Hex(), kb.InlineKeyboard[0][0].CallbackData)
}

func TestDeleteNewsItem(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()

	env.engine.HandleUpdate(context.Background(), callbackUpdate(adminID, adminChatID, DelNews+":"+id.Hex()))

	assert.Equal(t, []string{id.Hex()}, env.news.deleted)
	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, "✅ Удалено!", env.notifier.sent[0].text)
}
