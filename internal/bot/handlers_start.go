package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"gopkg.in/telebot.v4"
)

// handleStart — главное меню для зарегистрированных, мастер настройки для новых
func (b *Bot) handleStart(c telebot.Context) error {
	id := senderID(c)
	if id == "" || !isPrivate(c) {
		return nil
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	b.deps.Convs.Delete(id)
	if !b.isAdmin(c) && b.deps.Settings.IsPaused(ctx) {
		return c.Send(b.deps.Settings.PauseMessage(ctx))
	}

	u, err := b.deps.Users.GetUserByTelegramID(ctx, id)
	if err == nil {
		b.deps.Wizard.Abandon(id)
		text, kb := b.mainMenu(ctx, c, u)
		return c.Send(text, kb)
	}
	if errcode.FromError(err) != errcode.NotFoundUser {
		b.logger.Error("start: load user failed",
			slog.String("telegram_id", id),
			slog.String("err", err.Error()),
		)
		return c.Send(textInternal)
	}

	s := b.deps.Wizard.Begin(id, displayName(c.Sender()), wizard.ModeNew, nil)
	text, kb := b.wizardScreen(s)
	return c.Send("👋 Вітаю! Налаштуємо сповіщення про відключення світла.\n\n"+text, kb)
}

// handleWizardEvent — событие мастера из callback; сам мастер решает, подходит ли оно шагу
func (b *Bot) handleWizardEvent(c telebot.Context, ev wizard.Event) error {
	id := senderID(c)
	ctx, cancel := b.reqCtx()
	defer cancel()

	res, err := b.deps.Wizard.Handle(ctx, id, ev)
	if err != nil {
		// сессия сохранена, подтверждение можно повторить
		return alert(c, textCommitFailed)
	}

	switch {
	case res.NoSession:
		return alert(c, textSessionStale)
	case res.Ignored:
		return nil
	case res.Abandoned:
		if res.Session.Mode == wizard.ModeEdit {
			return b.cbSettings(c, "")
		}
		return b.edit(c, "Налаштування скасовано. Щоб почати знову, надішліть /start")
	case res.Committed:
		return b.afterCommit(c, res)
	}

	text, kb := b.wizardScreen(res.Session)
	return b.edit(c, text, kb)
}

// afterCommit — новый пользователь выбирает, куда слать уведомления;
// после редактирования показываем итог и через паузу главное меню
func (b *Bot) afterCommit(c telebot.Context, res wizard.Result) error {
	region := b.deps.Catalog.RegionName(res.Session.Region)
	if res.Session.Mode == wizard.ModeNew {
		text := fmt.Sprintf("✅ Налаштування збережено!\n\n📍 Регіон: %s\n⚡ Черга: %s\n\nКуди надсилати сповіщення?",
			region, res.Session.Queue)
		return b.edit(c, text, wizardNotifyTargetKeyboard())
	}

	text := fmt.Sprintf("✅ Налаштування оновлено!\n\n📍 Регіон: %s\n⚡ Черга: %s", region, res.Session.Queue)
	if err := b.edit(c, text, editDoneKeyboard()); err != nil {
		return err
	}
	return b.menuAfterPace(c, res.User)
}

// menuAfterPace — главное меню отдельным сообщением после паузы
func (b *Bot) menuAfterPace(c telebot.Context, u domain.User) error {
	b.pace()
	ctx, cancel := b.reqCtx()
	defer cancel()
	text, kb := b.mainMenu(ctx, c, u)
	return c.Send(text, kb)
}

func (b *Bot) mainMenu(ctx context.Context, c telebot.Context, u domain.User) (string, *telebot.ReplyMarkup) {
	admin := b.isAdmin(c)
	pauseMsg := ""
	if !admin && b.deps.Settings.IsPaused(ctx) {
		pauseMsg = b.deps.Settings.PauseMessage(ctx)
	}
	return b.mainMenuText(u, pauseMsg), mainMenuKeyboard(admin)
}

// loadUser — запись отправителя; отсутствие записи отдаётся как ошибка NotFoundUser
func (b *Bot) loadUser(ctx context.Context, c telebot.Context) (domain.User, error) {
	return b.deps.Users.GetUserByTelegramID(ctx, senderID(c))
}

// replyErr — ответ пользователю по коду ошибки: alert для callback, сообщение для команд
func (b *Bot) replyErr(c telebot.Context, err error) error {
	code := errcode.FromError(err)
	if code == errcode.Internal {
		b.logger.Error("handler failed",
			slog.String("telegram_id", senderID(c)),
			slog.String("err", err.Error()),
		)
	}
	if c.Callback() != nil {
		text := translateBotError(code)
		if code == errcode.NotFoundUser {
			text = textUserNotFound + "\n" + textNeedStart
		}
		return alert(c, text)
	}
	if code == errcode.NotFoundUser {
		return c.Send(textNeedStart)
	}
	return c.Send(translateBotError(code))
}

// edit — правка сообщения с кнопкой; "message is not modified" не считается ошибкой
func (b *Bot) edit(c telebot.Context, what interface{}, opts ...interface{}) error {
	err := c.Edit(what, opts...)
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	return err
}

func isPrivate(c telebot.Context) bool {
	return c.Chat() == nil || c.Chat().Type == telebot.ChatPrivate
}
