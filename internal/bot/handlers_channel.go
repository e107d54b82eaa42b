package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

func (b *Bot) cbChannel(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, channelText(u), channelKeyboard(u))
}

// pendingFor — каналы, добавленные пользователем и ещё не подтверждённые
func (b *Bot) pendingFor(telegramID string) []PendingChannel {
	var out []PendingChannel
	b.deps.Channels.Range(func(_ int64, ch PendingChannel) bool {
		if ch.AddedBy == telegramID {
			out = append(out, ch)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out
}

func (b *Bot) cbChannelConnect(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	if b.deps.Settings.IsPaused(ctx) {
		return alert(c, translateBotError(errcode.Paused))
	}
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	pending := b.pendingFor(u.TelegramID)
	if len(pending) == 0 {
		return b.edit(c, textChannelInstructions, markup(navRow()))
	}
	return b.edit(c, "Оберіть канал для підключення:", pendingChannelsKeyboard(pending))
}

// cbChannelConfirm — привязка канала из списка ожидающих к пользователю
func (b *Bot) cbChannelConfirm(c telebot.Context, arg string) error {
	channelID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return alert(c, translateBotError(errcode.BadRequest))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	if b.deps.Settings.IsPaused(ctx) {
		return alert(c, translateBotError(errcode.Paused))
	}
	id := senderID(c)
	pc, ok := b.deps.Channels.Get(channelID)
	if !ok || pc.AddedBy != id {
		return alert(c, translateBotError(errcode.ChannelNotFound))
	}
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}

	owner, err := b.deps.Users.GetUserByChannelID(ctx, channelID)
	switch {
	case err == nil && owner.TelegramID != id:
		b.deps.Channels.Delete(channelID)
		return alert(c, translateBotError(errcode.ChannelOccupied))
	case err != nil && errcode.FromError(err) != errcode.NotFoundUser:
		return b.replyErr(c, err)
	}

	if err := b.deps.Users.UpdateChannel(ctx, id, channelID); err != nil {
		if errors.Is(err, derrors.ErrChannelOccupied) {
			b.deps.Channels.Delete(channelID)
		}
		return b.replyErr(c, err)
	}
	b.deps.Channels.Delete(channelID)
	u.ChannelID = channelID

	b.logger.Info("channel connected",
		slog.String("telegram_id", id),
		slog.Int64("chat_id", channelID),
	)
	if err := b.edit(c, fmt.Sprintf("✅ Канал «%s» підключено!", pc.Title)); err != nil {
		return err
	}
	return b.menuAfterPace(c, u)
}

func (b *Bot) cbChannelDisconnect(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if err := b.deps.Users.UpdateChannel(ctx, u.TelegramID, 0); err != nil {
		return b.replyErr(c, err)
	}
	b.logger.Info("channel disconnected",
		slog.String("telegram_id", u.TelegramID),
		slog.Int64("chat_id", u.ChannelID),
	)
	u.ChannelID = 0
	_ = toast(c, "Канал відключено")
	return b.edit(c, channelText(u), channelKeyboard(u))
}

// onMyChatMember — бота назначили админом канала или удалили из него
func (b *Bot) onMyChatMember(c telebot.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.Chat == nil || upd.Chat.Type != telebot.ChatChannel || upd.NewChatMember == nil {
		return nil
	}
	switch upd.NewChatMember.Role {
	case telebot.Administrator:
		return b.onAddedToChannel(upd)
	case telebot.Left, telebot.Kicked:
		return b.onRemovedFromChannel(upd)
	}
	return nil
}

func (b *Bot) onAddedToChannel(upd *telebot.ChatMemberUpdate) error {
	if upd.Sender == nil {
		return nil
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	adder := telebot.ChatID(upd.Sender.ID)
	adderID := strconv.FormatInt(upd.Sender.ID, 10)
	channelID := upd.Chat.ID

	if b.deps.Settings.IsPaused(ctx) {
		b.logger.Info("channel add ignored: paused", slog.Int64("chat_id", channelID))
		return b.send(adder, "⏸️ Підключення каналів тимчасово недоступне")
	}

	owner, err := b.deps.Users.GetUserByChannelID(ctx, channelID)
	switch {
	case err == nil && owner.TelegramID != adderID:
		b.logger.Warn("channel add rejected: occupied",
			slog.String("telegram_id", adderID),
			slog.Int64("chat_id", channelID),
		)
		return b.send(adder, translateBotError(errcode.ChannelOccupied))
	case err == nil:
		return b.send(adder, fmt.Sprintf("Канал «%s» вже підключено до вашого профілю", upd.Chat.Title))
	case errcode.FromError(err) != errcode.NotFoundUser:
		b.logger.Error("channel add: owner lookup failed",
			slog.Int64("chat_id", channelID),
			slog.String("err", err.Error()),
		)
		return err
	}

	b.deps.Channels.Set(channelID, PendingChannel{
		ID:      channelID,
		Title:   upd.Chat.Title,
		AddedBy: adderID,
		AddedAt: time.Now(),
	})
	b.logger.Info("channel pending",
		slog.String("telegram_id", adderID),
		slog.Int64("chat_id", channelID),
	)
	return b.send(adder,
		fmt.Sprintf("Бота додано до каналу «%s». Підключити його для публікацій?", upd.Chat.Title),
		markup([]telebot.InlineButton{btn("✅ Підключити", cbChannelConfirmPref+strconv.FormatInt(channelID, 10))}),
	)
}

func (b *Bot) onRemovedFromChannel(upd *telebot.ChatMemberUpdate) error {
	channelID := upd.Chat.ID
	b.deps.Channels.Delete(channelID)

	ctx, cancel := b.reqCtx()
	defer cancel()

	owner, err := b.deps.Users.GetUserByChannelID(ctx, channelID)
	if err != nil {
		if errcode.FromError(err) == errcode.NotFoundUser {
			return nil
		}
		return err
	}
	if err := b.deps.Users.UpdateChannel(ctx, owner.TelegramID, 0); err != nil {
		return err
	}
	b.logger.Info("channel removed",
		slog.String("telegram_id", owner.TelegramID),
		slog.Int64("chat_id", channelID),
	)

	ownerID, err := strconv.ParseInt(owner.TelegramID, 10, 64)
	if err != nil {
		return nil
	}
	return b.send(telebot.ChatID(ownerID),
		fmt.Sprintf("⚠️ Бота видалено з каналу «%s». Публікації в канал зупинено.", upd.Chat.Title))
}

// send — сообщение в чат, отличный от чата апдейта
func (b *Bot) send(to telebot.Recipient, what interface{}, opts ...interface{}) error {
	if b.sender == nil {
		return nil
	}
	_, err := b.sender.Send(to, what, opts...)
	return err
}
