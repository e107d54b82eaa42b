package bot

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/service/power"
	"gopkg.in/telebot.v4"
)

// ConvKind — какой текст бот ждёт от пользователя
type ConvKind int

const (
	ConvRouterIP ConvKind = iota + 1
	ConvFormatCaption
	ConvFormatPeriod
	ConvFormatPowerOff
	ConvFormatPowerOn
	ConvPauseMessage
)

// Conversation — ожидание текстового ввода после нажатия кнопки
type Conversation struct {
	Kind ConvKind
}

const maxTemplateLen = 500

// onText — текст вне команд: ответ на активный запрос ввода
func (b *Bot) onText(c telebot.Context) error {
	id := senderID(c)
	if id == "" || !isPrivate(c) {
		return nil
	}
	conv, ok := b.deps.Convs.Get(id)
	if !ok {
		return c.Send("Скористайтеся меню: /menu")
	}

	text := strings.TrimSpace(c.Text())
	switch conv.Kind {
	case ConvRouterIP:
		return b.saveRouterIP(c, id, text)
	case ConvPauseMessage:
		return b.savePauseMessage(c, id, text)
	default:
		return b.saveTemplate(c, id, conv.Kind, text)
	}
}

func (b *Bot) saveRouterIP(c telebot.Context, id, text string) error {
	addr, err := power.NormalizeAddress(text)
	if err != nil {
		// запрос ввода остаётся активным
		return c.Send(translateBotError(errcode.InvalidIP))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	if err := b.deps.Users.UpdateRouterIP(ctx, id, addr); err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(id)
	b.logger.Info("router ip saved", slog.String("telegram_id", id))
	return c.Send("✅ IP-адресу збережено: "+addr+"\n\nБот повідомить, коли світло зникне чи з'явиться.",
		editDoneKeyboard())
}

func (b *Bot) saveTemplate(c telebot.Context, id string, kind ConvKind, text string) error {
	if text == "" || utf8.RuneCountInString(text) > maxTemplateLen {
		return c.Send("❌ Текст має бути від 1 до 500 символів")
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		b.deps.Convs.Delete(id)
		return b.replyErr(c, err)
	}
	f := u.Format
	switch kind {
	case ConvFormatCaption:
		f.ScheduleCaption = text
	case ConvFormatPeriod:
		f.PeriodFormat = text
	case ConvFormatPowerOff:
		f.PowerOffText = text
	case ConvFormatPowerOn:
		f.PowerOnText = text
	default:
		b.deps.Convs.Delete(id)
		return nil
	}
	if err := b.deps.Users.UpdateFormatSettings(ctx, id, f); err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(id)
	return c.Send("✅ Шаблон збережено", markup(
		[]telebot.InlineButton{btn("← Назад", cbSettingsFormat), btn("⤴︎ Меню", cbMainMenu)},
	))
}

func (b *Bot) savePauseMessage(c telebot.Context, id, text string) error {
	b.deps.Convs.Delete(id)
	if !b.isAdmin(c) {
		return c.Send(textAccessDenied)
	}
	if text == "" || utf8.RuneCountInString(text) > maxTemplateLen {
		b.deps.Convs.Set(id, Conversation{Kind: ConvPauseMessage})
		return c.Send("❌ Текст має бути від 1 до 500 символів")
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	if err := b.deps.Settings.SetPauseMessage(ctx, text); err != nil {
		return b.replyErr(c, err)
	}
	b.logger.Info("pause message updated", slog.String("telegram_id", id))
	return c.Send("✅ Повідомлення паузи збережено", markup(
		[]telebot.InlineButton{btn("← Назад", cbAdminPause), btn("⤴︎ Меню", cbMainMenu)},
	))
}

// handleCancel — /cancel: сброс ввода и мастера
func (b *Bot) handleCancel(c telebot.Context) error {
	id := senderID(c)
	if id == "" {
		return nil
	}
	_, hadConv := b.deps.Convs.Get(id)
	_, hadSession := b.deps.Wizard.Session(id)
	b.deps.Convs.Delete(id)
	b.deps.Wizard.Abandon(id)

	if !hadConv && !hadSession {
		return c.Send("Немає активних дій для скасування")
	}

	ctx, cancel := b.reqCtx()
	defer cancel()
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return c.Send("Скасовано. Щоб почати знову, надішліть /start")
	}
	text, kb := b.mainMenu(ctx, c, u)
	return c.Send("Скасовано\n\n"+text, kb)
}

// formatField — текущий шаблон для вида ввода; нужен для подсказок
func formatField(f domain.FormatSettings, kind ConvKind) string {
	switch kind {
	case ConvFormatCaption:
		return f.ScheduleCaption
	case ConvFormatPeriod:
		return f.PeriodFormat
	case ConvFormatPowerOff:
		return f.PowerOffText
	case ConvFormatPowerOn:
		return f.PowerOnText
	}
	return ""
}
