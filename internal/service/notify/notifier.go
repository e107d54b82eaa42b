package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/metrics"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Messenger - отправка сообщений в Telegram (личный чат или канал)
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string) (int, error)
	Delete(ctx context.Context, chatID int64, messageID int) error
}

// Delivery - результат рассылки одного уведомления
type Delivery struct {
	// ChannelMessageID - id поста в канале, 0 если в канал не отправляли
	ChannelMessageID int
	Sent             int
}

// Notifier - доставка уведомлений по настройке notify_target пользователя
type Notifier struct {
	messenger Messenger
	log       *slog.Logger
}

func New(messenger Messenger, log *slog.Logger) *Notifier {
	return &Notifier{messenger: messenger, log: log}
}

// Targets - куда отправлять: канал без подключения заменяется личным чатом
func Targets(u domain.User) (toBot, toChannel bool) {
	switch u.NotifyTarget {
	case domain.NotifyChannel:
		if u.HasChannel() {
			return false, true
		}
		return true, false
	case domain.NotifyBoth:
		return true, u.HasChannel()
	default:
		return true, false
	}
}

// Deliver - отправка текста по целям пользователя. Ошибка возвращается,
// только если не удалось доставить ни в одну цель.
func (n *Notifier) Deliver(ctx context.Context, u domain.User, kind, text string) (Delivery, error) {
	toBot, toChannel := Targets(u)
	var (
		d    Delivery
		errs []error
	)

	if toChannel {
		id, err := n.send(ctx, u.ChannelID, kind, text)
		if err != nil {
			errs = append(errs, fmt.Errorf("channel %d: %w", u.ChannelID, err))
		} else {
			d.ChannelMessageID = id
			d.Sent++
		}
	}
	if toBot {
		chatID, err := strconv.ParseInt(u.TelegramID, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("bad telegram id %q: %w", u.TelegramID, err))
		} else if _, err := n.send(ctx, chatID, kind, text); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		} else {
			d.Sent++
		}
	}

	if d.Sent == 0 && len(errs) > 0 {
		return d, errors.Join(errs...)
	}
	for _, err := range errs {
		n.log.Warn("notify.partial failure",
			slog.String("telegram_id", u.TelegramID),
			slog.String("kind", kind),
			slog.String("err", err.Error()))
	}
	return d, nil
}

// DeleteChannelMessage - удаление предыдущего поста в канале
func (n *Notifier) DeleteChannelMessage(ctx context.Context, u domain.User, messageID int) {
	if !u.HasChannel() || messageID == 0 {
		return
	}
	if err := n.messenger.Delete(ctx, u.ChannelID, messageID); err != nil {
		n.log.Warn("notify.delete old message failed",
			slog.Int64("chat_id", u.ChannelID),
			slog.Int("message_id", messageID),
			slog.String("err", err.Error()))
	}
}

func (n *Notifier) send(ctx context.Context, chatID int64, kind, text string) (int, error) {
	id, err := n.messenger.Send(ctx, chatID, text)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(kind, "error").Inc()
		return 0, err
	}
	metrics.NotificationsSent.WithLabelValues(kind, "ok").Inc()
	return id, nil
}
