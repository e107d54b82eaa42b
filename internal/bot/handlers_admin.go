package bot

import (
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/Ivan200424/Voltyk/internal/service/settings"
	"gopkg.in/telebot.v4"
)

// handleAdminCommand — /admin, только для администраторов
func (b *Bot) handleAdminCommand(c telebot.Context) error {
	if !isPrivate(c) {
		return nil
	}
	if !b.isAdmin(c) {
		b.logger.Warn("admin: access denied", slog.String("telegram_id", senderID(c)))
		return c.Send(textAccessDenied)
	}
	ctx, cancel := b.reqCtx()
	defer cancel()
	return c.Send("🔧 Адмін-панель", adminKeyboard(b.deps.Settings.IsPaused(ctx)))
}

func (b *Bot) cbAdminPanel(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()
	return b.edit(c, "🔧 Адмін-панель", adminKeyboard(b.deps.Settings.IsPaused(ctx)))
}

func (b *Bot) cbAdminStats(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	stats, err := b.deps.Users.Stats(ctx)
	if err != nil {
		return b.replyErr(c, err)
	}
	return b.edit(c, b.statsText(stats), markup(
		[]telebot.InlineButton{btn("🔄 Оновити", cbAdminStats)},
		adminBackRow(),
	))
}

func (b *Bot) cbAdminIntervals(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()
	return b.showIntervals(c, b.deps.Settings.ScheduleInterval(ctx), b.deps.Settings.PowerInterval(ctx))
}

func (b *Bot) showIntervals(c telebot.Context, schedule, power time.Duration) error {
	return b.edit(c, intervalsText(schedule, power), adminIntervalsKeyboard(schedule, power))
}

// cbAdminScheduleInterval — новый интервал проверки графиков; планировщик подхватит его в следующем цикле
func (b *Bot) cbAdminScheduleInterval(c telebot.Context, arg string) error {
	sec, err := strconv.Atoi(arg)
	if err != nil || !slices.Contains(scheduleIntervalOptions, sec) {
		return alert(c, translateBotError(errcode.BadRequest))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	d := time.Duration(sec) * time.Second
	if err := b.deps.Settings.SetScheduleInterval(ctx, d); err != nil {
		return b.replyErr(c, err)
	}
	b.logger.Info("admin: schedule interval changed",
		slog.String("telegram_id", senderID(c)),
		slog.Duration("interval", d),
	)
	_ = toast(c, "✅ Інтервал графіків: "+humanSeconds(sec))
	return b.showIntervals(c, d, b.deps.Settings.PowerInterval(ctx))
}

func (b *Bot) cbAdminPowerInterval(c telebot.Context, arg string) error {
	sec, err := strconv.Atoi(arg)
	if err != nil || !slices.Contains(powerIntervalOptions, sec) {
		return alert(c, translateBotError(errcode.BadRequest))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	d := time.Duration(sec) * time.Second
	if err := b.deps.Settings.SetPowerInterval(ctx, d); err != nil {
		return b.replyErr(c, err)
	}
	b.logger.Info("admin: power interval changed",
		slog.String("telegram_id", senderID(c)),
		slog.Duration("interval", d),
	)
	_ = toast(c, "✅ Інтервал перевірки світла: "+humanSeconds(sec))
	return b.showIntervals(c, b.deps.Settings.ScheduleInterval(ctx), d)
}

func (b *Bot) cbAdminPause(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	paused := b.deps.Settings.IsPaused(ctx)
	return b.edit(c, pauseText(paused, b.deps.Settings.PauseMessage(ctx)), pauseKeyboard(paused))
}

func (b *Bot) cbPauseToggle(c telebot.Context, _ string) error {
	ctx, cancel := b.reqCtx()
	defer cancel()

	paused, err := b.deps.Settings.TogglePaused(ctx)
	if err != nil {
		return b.replyErr(c, err)
	}
	b.logger.Info("admin: pause toggled",
		slog.String("telegram_id", senderID(c)),
		slog.Bool("paused", paused),
	)
	return b.edit(c, pauseText(paused, b.deps.Settings.PauseMessage(ctx)), pauseKeyboard(paused))
}

func (b *Bot) cbPauseMessage(c telebot.Context, _ string) error {
	b.deps.Convs.Delete(senderID(c))
	return b.edit(c, "✏️ Оберіть повідомлення, яке бачитимуть користувачі під час паузи:", pauseTemplatesKeyboard())
}

func (b *Bot) cbPauseTemplate(c telebot.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(settings.PauseTemplates) {
		return alert(c, translateBotError(errcode.BadRequest))
	}
	ctx, cancel := b.reqCtx()
	defer cancel()

	msg := settings.PauseTemplates[n-1]
	if err := b.deps.Settings.SetPauseMessage(ctx, msg); err != nil {
		return b.replyErr(c, err)
	}
	_ = toast(c, "✅ Повідомлення збережено")
	paused := b.deps.Settings.IsPaused(ctx)
	return b.edit(c, pauseText(paused, msg), pauseKeyboard(paused))
}

func (b *Bot) cbPauseCustom(c telebot.Context, _ string) error {
	b.deps.Convs.Set(senderID(c), Conversation{Kind: ConvPauseMessage})
	return b.edit(c, "✍️ Надішліть текст повідомлення паузи", markup(
		[]telebot.InlineButton{btn("← Назад", cbAdminPause), btn("⤴︎ Меню", cbMainMenu)},
	))
}
