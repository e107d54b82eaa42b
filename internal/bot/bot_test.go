package bot

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Ivan200424/Voltyk/internal/access"
	"github.com/Ivan200424/Voltyk/internal/bot/mocks"
	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	wizardmocks "github.com/Ivan200424/Voltyk/internal/wizard/mocks"
	"github.com/golang/mock/gomock"
	"gopkg.in/telebot.v4"
)

const (
	userID  int64 = 42
	adminID int64 = 1
)

type message struct {
	text   string
	markup *telebot.ReplyMarkup
}

func toMessage(what interface{}, opts []interface{}) message {
	m := message{}
	if s, ok := what.(string); ok {
		m.text = s
	}
	for _, o := range opts {
		if rm, ok := o.(*telebot.ReplyMarkup); ok {
			m.markup = rm
		}
	}
	return m
}

// fakeCtx — telebot.Context с методами, которые используют обработчики
type fakeCtx struct {
	telebot.Context

	sender   *telebot.User
	chat     *telebot.Chat
	callback *telebot.Callback
	text     string
	member   *telebot.ChatMemberUpdate

	sent      []message
	edits     []message
	responses []*telebot.CallbackResponse
}

func (f *fakeCtx) Sender() *telebot.User                 { return f.sender }
func (f *fakeCtx) Chat() *telebot.Chat                   { return f.chat }
func (f *fakeCtx) Callback() *telebot.Callback           { return f.callback }
func (f *fakeCtx) Text() string                          { return f.text }
func (f *fakeCtx) ChatMember() *telebot.ChatMemberUpdate { return f.member }

func (f *fakeCtx) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, toMessage(what, opts))
	return nil
}

func (f *fakeCtx) Edit(what interface{}, opts ...interface{}) error {
	f.edits = append(f.edits, toMessage(what, opts))
	return nil
}

func (f *fakeCtx) Respond(resp ...*telebot.CallbackResponse) error {
	if len(resp) == 0 {
		f.responses = append(f.responses, &telebot.CallbackResponse{})
		return nil
	}
	f.responses = append(f.responses, resp...)
	return nil
}

func (f *fakeCtx) lastEdit() message {
	if len(f.edits) == 0 {
		return message{}
	}
	return f.edits[len(f.edits)-1]
}

func (f *fakeCtx) lastSent() message {
	if len(f.sent) == 0 {
		return message{}
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeCtx) lastResponse() *telebot.CallbackResponse {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

func privateChat(id int64) *telebot.Chat {
	return &telebot.Chat{ID: id, Type: telebot.ChatPrivate}
}

func command(id int64, text string) *fakeCtx {
	return &fakeCtx{
		sender: &telebot.User{ID: id, Username: "ivan"},
		chat:   privateChat(id),
		text:   text,
	}
}

func press(id int64, data string) *fakeCtx {
	return &fakeCtx{
		sender:   &telebot.User{ID: id, Username: "ivan"},
		chat:     privateChat(id),
		callback: &telebot.Callback{Data: data},
	}
}

type testEnv struct {
	bot      *Bot
	users    *mocks.MockUserStore
	settings *mocks.MockSettingsService
	schedule *mocks.MockScheduleService
	power    *mocks.MockPowerService
	sender   *mocks.MockSender
	repo     *wizardmocks.MockUserRepository
	store    *wizard.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		users:    mocks.NewMockUserStore(ctrl),
		settings: mocks.NewMockSettingsService(ctrl),
		schedule: mocks.NewMockScheduleService(ctrl),
		power:    mocks.NewMockPowerService(ctrl),
		sender:   mocks.NewMockSender(ctrl),
		repo:     wizardmocks.NewMockUserRepository(ctrl),
		store:    wizard.NewStore(),
	}
	catalog := domain.DefaultCatalog()
	deps := Deps{
		Users:    env.users,
		Settings: env.settings,
		Schedule: env.schedule,
		Power:    env.power,
		Wizard:   wizard.NewMachine(env.store, env.repo, catalog, logger),
		Catalog:  catalog,
		Policy:   access.NewPolicy([]string{"1"}, ""),
	}
	env.bot = newBot(nil, Config{}, deps, logger)
	env.bot.sender = env.sender
	return env
}

// running — бот не на паузе
func (e *testEnv) running() {
	e.settings.EXPECT().IsPaused(gomock.Any()).Return(false).AnyTimes()
}

func registered() domain.User {
	return domain.User{
		TelegramID:         "42",
		Username:           "ivan",
		Region:             "kyiv",
		Queue:              "3.1",
		NotifyTarget:       domain.NotifyBot,
		AlertBeforeMinutes: 15,
		IsActive:           true,
	}
}
