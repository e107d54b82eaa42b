package bot

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Ivan200424/Voltyk/internal/access"
	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/pkg/memstore"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"gopkg.in/telebot.v4"
)

//go:generate mockgen -source=bot.go -destination=mocks/mock_bot.go -package=mocks

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	// MenuDelay - пауза перед главным меню после сохранения настроек
	MenuDelay      time.Duration
	RequestTimeout time.Duration
}

// UserStore — операции с пользователями, которые нужны обработчикам
type UserStore interface {
	GetUserByTelegramID(ctx context.Context, telegramID string) (domain.User, error)
	GetUserByChannelID(ctx context.Context, channelID int64) (domain.User, error)
	UpdateChannel(ctx context.Context, telegramID string, channelID int64) error
	UpdateNotifyTarget(ctx context.Context, telegramID string, target domain.NotifyTarget) error
	UpdateAlertBefore(ctx context.Context, telegramID string, minutes int) error
	UpdateRouterIP(ctx context.Context, telegramID, ip string) error
	UpdateFormatSettings(ctx context.Context, telegramID string, f domain.FormatSettings) error
	DeleteUser(ctx context.Context, telegramID string) error
	Stats(ctx context.Context) (domain.Stats, error)
}

// SettingsService — глобальные настройки (интервалы и пауза)
type SettingsService interface {
	ScheduleInterval(ctx context.Context) time.Duration
	PowerInterval(ctx context.Context) time.Duration
	SetScheduleInterval(ctx context.Context, d time.Duration) error
	SetPowerInterval(ctx context.Context, d time.Duration) error
	IsPaused(ctx context.Context) bool
	TogglePaused(ctx context.Context) (bool, error)
	PauseMessage(ctx context.Context) string
	SetPauseMessage(ctx context.Context, msg string) error
}

// ScheduleService — графики по запросу пользователя
type ScheduleService interface {
	Today(ctx context.Context, u domain.User) (string, error)
	PublishTest(ctx context.Context, u domain.User) error
}

// PowerService — тестовая публикация состояния света
type PowerService interface {
	PublishTest(ctx context.Context, u domain.User) error
}

// Sender — отправка в произвольный чат (не в чат текущего апдейта)
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// PendingChannel — канал, куда бота добавили админом, но владелец ещё не подтвердил привязку
type PendingChannel struct {
	ID      int64
	Title   string
	AddedBy string
	AddedAt time.Time
}

// Deps — зависимости обработчиков
type Deps struct {
	Users    UserStore
	Settings SettingsService
	Schedule ScheduleService
	Power    PowerService
	Wizard   *wizard.Machine
	Catalog  *domain.Catalog
	Policy   access.Policy
	Channels *memstore.Store[int64, PendingChannel]
	Convs    *memstore.Store[string, Conversation]
}

// Bot — Telegram-интерфейс сервиса
type Bot struct {
	api    *telebot.Bot
	sender Sender
	cfg    Config
	deps   Deps
	routes *router
	logger *slog.Logger

	ctx context.Context
}

// NewClient создаёт клиента Telegram API; нужен раньше бота, чтобы сервисы могли отправлять сообщения
func NewClient(cfg Config) (*telebot.Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	return telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout, AllowedUpdates: allowedUpdates},
	})
}

var allowedUpdates = []string{"message", "callback_query", "my_chat_member"}

// New создаёт бота и регистрирует маршруты
func New(api *telebot.Bot, cfg Config, deps Deps, logger *slog.Logger) *Bot {
	b := newBot(api, cfg, deps, logger)

	// маршруты команд
	api.Handle("/start", b.handleStart)
	api.Handle("/menu", b.handleMenuCommand)
	api.Handle("/admin", b.handleAdminCommand)
	api.Handle("/cancel", b.handleCancel)
	api.Handle(telebot.OnCallback, b.onCallback)
	api.Handle(telebot.OnText, b.onText)
	api.Handle(telebot.OnMyChatMember, b.onMyChatMember)
	return b
}

func newBot(api *telebot.Bot, cfg Config, deps Deps, logger *slog.Logger) *Bot {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	if deps.Channels == nil {
		deps.Channels = memstore.New[int64, PendingChannel]()
	}
	if deps.Convs == nil {
		deps.Convs = memstore.New[string, Conversation]()
	}
	b := &Bot{
		api:    api,
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		ctx:    context.Background(),
	}
	if api != nil {
		b.sender = api
	}
	b.routes = b.buildRoutes()
	return b
}

// Start запускает long polling; ctx ограничивает фоновые паузы и запросы обработчиков
func (b *Bot) Start(ctx context.Context) {
	b.ctx = ctx
	b.logger.Info("bot started", slog.String("username", b.api.Me.Username))
	go b.api.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.api.Stop()
}

// reqCtx — контекст запроса к хранилищу с таймаутом
func (b *Bot) reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(b.ctx, b.cfg.RequestTimeout)
}

// pace — пауза перед главным меню; прерывается остановкой бота
func (b *Bot) pace() {
	if b.cfg.MenuDelay <= 0 {
		return
	}
	t := time.NewTimer(b.cfg.MenuDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-b.ctx.Done():
	}
}

func (b *Bot) isAdmin(c telebot.Context) bool {
	return c.Sender() != nil && b.deps.Policy.IsAdminID(c.Sender().ID)
}

func senderID(c telebot.Context) string {
	if c.Sender() == nil {
		return ""
	}
	return strconv.FormatInt(c.Sender().ID, 10)
}

func displayName(u *telebot.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
