package bot

import (
	"time"

	"gopkg.in/telebot.v4"
)

// handleMenuCommand — /menu
func (b *Bot) handleMenuCommand(c telebot.Context) error {
	if !isPrivate(c) {
		return nil
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(senderID(c))
	text, kb := b.mainMenu(ctx, c, u)
	return c.Send(text, kb)
}

func (b *Bot) cbMainMenu(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(senderID(c))
	text, kb := b.mainMenu(ctx, c, u)
	return b.edit(c, text, kb)
}

// cbSchedule — график на сегодня для очереди пользователя
func (b *Bot) cbSchedule(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	text, err := b.deps.Schedule.Today(ctx, u)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, text, markup(
		[]telebot.InlineButton{btn("🔄 Оновити", cbMenuSchedule), btn("⤴︎ Меню", cbMainMenu)},
	))
}

func (b *Bot) cbHelp(c telebot.Context, _ string) error {
	return b.edit(c, textHelp, markup([]telebot.InlineButton{btn("⤴︎ Меню", cbMainMenu)}))
}

// cbStats — сводка по собственной записи пользователя
func (b *Bot) cbStats(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, b.userStatsText(u, time.Now()), markup(
		[]telebot.InlineButton{btn("🔄 Оновити", cbMenuStats), btn("⤴︎ Меню", cbMainMenu)},
	))
}
