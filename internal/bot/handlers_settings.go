package bot

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/pkg/botfmt"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"gopkg.in/telebot.v4"
)

func (b *Bot) cbSettings(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(u.TelegramID)
	return b.edit(c, b.settingsText(u), settingsKeyboard(b.isAdmin(c)))
}

// cbSettingsRegion — мастер в режиме редактирования с текущими регионом и очередью
func (b *Bot) cbSettingsRegion(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	s := b.deps.Wizard.Begin(u.TelegramID, displayName(c.Sender()), wizard.ModeEdit, &u)
	text, kb := b.wizardScreen(s)
	return b.edit(c, text, kb)
}

func (b *Bot) cbAlerts(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, alertsText(u), alertsKeyboard(u))
}

func (b *Bot) cbAlertToggle(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	minutes := defaultAlertMinutes
	if u.AlertBeforeMinutes > 0 {
		minutes = 0
	}
	return b.setAlert(c, u, minutes)
}

func (b *Bot) cbAlertTime(c telebot.Context, arg string) error {
	minutes, err := strconv.Atoi(arg)
	if err != nil || !slices.Contains(alertOptions, minutes) {
		return alert(c, translateBotError(errcode.BadRequest))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.setAlert(c, u, minutes)
}

func (b *Bot) setAlert(c telebot.Context, u domain.User, minutes int) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	if err := b.deps.Users.UpdateAlertBefore(ctx, u.TelegramID, minutes); err != nil {
		return b.replyErr(c, err)
	}
	u.AlertBeforeMinutes = minutes
	return b.edit(c, alertsText(u), alertsKeyboard(u))
}

func (b *Bot) cbNotifyMenu(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, "🎯 Куди надсилати сповіщення?\n\nЗараз: "+notifyTargetText(u.NotifyTarget),
		notifyTargetKeyboard(u.NotifyTarget))
}

func notifyTargetFromData(data string) domain.NotifyTarget {
	switch data {
	case cbNotifyChannel, cbWizardNotifyChannel:
		return domain.NotifyChannel
	case cbNotifyBoth:
		return domain.NotifyBoth
	default:
		return domain.NotifyBot
	}
}

func (b *Bot) cbNotifyTarget(c telebot.Context, _ string) error {
	target := notifyTargetFromData(c.Callback().Data)
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if err := b.deps.Users.UpdateNotifyTarget(ctx, u.TelegramID, target); err != nil {
		return b.replyErr(c, err)
	}
	if target != domain.NotifyBot && !u.HasChannel() {
		_ = toast(c, "Канал не підключено: поки що сповіщення надходитимуть у бот")
	}
	return b.edit(c, "🎯 Куди надсилати сповіщення?\n\nЗараз: "+notifyTargetText(target),
		notifyTargetKeyboard(target))
}

// cbWizardNotify — выбор получателя сразу после первой настройки
func (b *Bot) cbWizardNotify(c telebot.Context, _ string) error {
	target := notifyTargetFromData(c.Callback().Data)
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if err := b.deps.Users.UpdateNotifyTarget(ctx, u.TelegramID, target); err != nil {
		return b.replyErr(c, err)
	}
	u.NotifyTarget = target

	if target == domain.NotifyChannel && !u.HasChannel() {
		return b.edit(c, textChannelInstructions, markup(
			[]telebot.InlineButton{btn("🔗 Підключити канал", cbChannelConnect)},
			[]telebot.InlineButton{btn("⤴︎ Меню", cbMainMenu)},
		))
	}
	if err := b.edit(c, "✅ Сповіщення надходитимуть "+notifyTargetText(target)); err != nil {
		return err
	}
	return b.menuAfterPace(c, u)
}

// cbRouterIP — следующий текст пользователя будет адресом роутера
func (b *Bot) cbRouterIP(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Set(u.TelegramID, Conversation{Kind: ConvRouterIP})
	return b.edit(c, routerIPText(u), ipKeyboard(u.RouterIP != ""))
}

func (b *Bot) cbRouterIPClear(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if err := b.deps.Users.UpdateRouterIP(ctx, u.TelegramID, ""); err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(u.TelegramID)
	u.RouterIP = ""
	_ = toast(c, "IP-адресу видалено")
	return b.edit(c, b.settingsText(u), settingsKeyboard(b.isAdmin(c)))
}

func (b *Bot) cbFormat(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Delete(u.TelegramID)
	return b.edit(c, formatText(u.Format), formatKeyboard(u.Format))
}

func (b *Bot) cbFormatDeleteToggle(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	u.Format.DeleteOldMessage = !u.Format.DeleteOldMessage
	if err := b.deps.Users.UpdateFormatSettings(ctx, u.TelegramID, u.Format); err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, formatText(u.Format), formatKeyboard(u.Format))
}

// cbFormatInput — ожидание шаблона текстом
func (b *Bot) cbFormatInput(c telebot.Context, _ string) error {
	var kind ConvKind
	switch c.Callback().Data {
	case cbFormatCaption:
		kind = ConvFormatCaption
	case cbFormatPeriod:
		kind = ConvFormatPeriod
	case cbFormatPowerOff:
		kind = ConvFormatPowerOff
	default:
		kind = ConvFormatPowerOn
	}

	ctx, cancel := b.reqCtx()
	defer cancel()
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Convs.Set(u.TelegramID, Conversation{Kind: kind})
	current := formatField(botfmt.WithDefaults(u.Format), kind)
	return b.edit(c, formatPrompt(kind)+"\n\nЗараз:\n"+current, markup(
		[]telebot.InlineButton{btn("← Назад", cbSettingsFormat), btn("⤴︎ Меню", cbMainMenu)},
	))
}

// cbFormatReset — шаблоны по умолчанию; флаг удаления старого графика сохраняется
func (b *Bot) cbFormatReset(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	f := domain.FormatSettings{DeleteOldMessage: u.Format.DeleteOldMessage}
	if err := b.deps.Users.UpdateFormatSettings(ctx, u.TelegramID, f); err != nil {
		return b.replyErr(c, err)
	}
	_ = toast(c, "Шаблони скинуто")
	return b.edit(c, formatText(f), formatKeyboard(f))
}

func (b *Bot) cbTestMenu(c telebot.Context, _ string) error {
	return b.edit(c, "🧪 Тестова публікація\n\nНадішле поточний графік або стан світла туди, куди налаштовано сповіщення.",
		testKeyboard())
}

func (b *Bot) cbTestSchedule(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	if b.deps.Settings.IsPaused(ctx) && !b.isAdmin(c) {
		return alert(c, translateBotError(errcode.Paused))
	}
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if err := b.deps.Schedule.PublishTest(ctx, u); err != nil {
		return b.replyErr(c, err)
	}
	return toast(c, "✅ Графік опубліковано")
}

func (b *Bot) cbTestPower(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	if b.deps.Settings.IsPaused(ctx) && !b.isAdmin(c) {
		return alert(c, translateBotError(errcode.Paused))
	}
	u, err := b.loadUser(ctx, c)
	if err != nil {
		return b.replyErr(c, err)
	}
	if u.RouterIP == "" {
		return alert(c, "Спочатку вкажіть IP роутера в налаштуваннях")
	}
	if err := b.deps.Power.PublishTest(ctx, u); err != nil {
		return b.replyErr(c, err)
	}
	return toast(c, "✅ Стан світла опубліковано")
}

func (b *Bot) cbDeleteAccount(c telebot.Context, _ string) error {
	return b.edit(c, "🗑 Видалити всі ваші дані?\n\nНалаштування, канал та IP буде втрачено. Дію не можна скасувати.",
		deleteConfirmKeyboard())
}

func (b *Bot) cbDeleteConfirm(c telebot.Context, _ string) error {
	id := senderID(c)
	ctx, cancel := b.reqCtx()
	defer cancel()

	if err := b.deps.Users.DeleteUser(ctx, id); err != nil {
		return b.replyErr(c, err)
	}
	b.deps.Wizard.Abandon(id)
	b.deps.Convs.Delete(id)
	b.logger.Info("user deleted", slog.String("telegram_id", id))
	return b.edit(c, "✅ Ваші дані видалено.\n\nЩоб почати знову, надішліть /start")
}
