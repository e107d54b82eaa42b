package bot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/service/settings"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"gopkg.in/telebot.v4"
)

// callback data
const (
	cbMainMenu     = "back_to_main"
	cbMenuSchedule = "menu_schedule"
	cbMenuSettings = "menu_settings"
	cbMenuHelp     = "menu_help"
	cbMenuStats    = "menu_stats"

	cbSettingsRegion  = "settings_region"
	cbSettingsAlerts  = "settings_alerts"
	cbSettingsChannel = "settings_channel"
	cbSettingsIP      = "settings_ip"
	cbSettingsFormat  = "settings_format"
	cbSettingsNotify  = "settings_notify"

	cbAlertToggle   = "alert_toggle"
	cbAlertTimePref = "alert_time_"

	cbIPClear = "ip_clear"

	cbFormatDeleteToggle = "format_delete_toggle"
	cbFormatCaption      = "format_caption"
	cbFormatPeriod       = "format_period"
	cbFormatPowerOff     = "format_power_off"
	cbFormatPowerOn      = "format_power_on"
	cbFormatReset        = "format_reset"
	cbFormatNoop         = "format_noop"
	cbFormatTest         = "format_test"

	cbNotifyBot     = "notify_bot"
	cbNotifyChannel = "notify_channel"
	cbNotifyBoth    = "notify_both"

	cbWizardNotifyBot     = "wizard_notify_bot"
	cbWizardNotifyChannel = "wizard_notify_channel"

	cbTestSchedule = "test_schedule"
	cbTestPower    = "test_power"

	cbDeleteAccount = "delete_account"
	cbDeleteConfirm = "delete_confirm"

	cbChannelConnect     = "channel_connect"
	cbChannelConfirmPref = "channel_confirm_"
	cbChannelDisconnect  = "channel_disconnect"

	cbAdminPanel        = "admin_panel"
	cbAdminStats        = "admin_stats"
	cbAdminIntervals    = "admin_intervals"
	cbAdminSchedulePref = "admin_schedule_"
	cbAdminIPPref       = "admin_ip_"
	cbAdminPause        = "admin_pause"

	cbPauseToggle       = "pause_toggle"
	cbPauseMessage      = "pause_message"
	cbPauseTemplatePref = "pause_template_"
	cbPauseCustom       = "pause_custom"
)

var (
	alertOptions            = []int{5, 10, 15, 30, 60}
	scheduleIntervalOptions = []int{60, 300, 600, 900, 1800}
	powerIntervalOptions    = []int{2, 5, 10, 30, 60}
)

const defaultAlertMinutes = 15

func btn(text, data string) telebot.InlineButton {
	return telebot.InlineButton{Text: text, Data: data}
}

func markup(rows ...[]telebot.InlineButton) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

// navRow — две кнопки навигации: назад в настройки и в главное меню
func navRow() []telebot.InlineButton {
	return []telebot.InlineButton{btn("← Назад", cbMenuSettings), btn("⤴︎ Меню", cbMainMenu)}
}

// chunk — раскладка кнопок по n в ряд
func chunk(buttons []telebot.InlineButton, n int) [][]telebot.InlineButton {
	var rows [][]telebot.InlineButton
	for len(buttons) > n {
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	if len(buttons) > 0 {
		rows = append(rows, buttons)
	}
	return rows
}

func mainMenuKeyboard(admin bool) *telebot.ReplyMarkup {
	rows := [][]telebot.InlineButton{
		{btn("📅 Графік", cbMenuSchedule), btn("⚙️ Налаштування", cbMenuSettings)},
		{btn("📊 Статистика", cbMenuStats), btn("❓ Допомога", cbMenuHelp)},
	}
	if admin {
		rows = append(rows, []telebot.InlineButton{btn("🔧 Адмін-панель", cbAdminPanel)})
	}
	return markup(rows...)
}

func regionKeyboard(catalog *domain.Catalog) *telebot.ReplyMarkup {
	buttons := make([]telebot.InlineButton, 0, len(catalog.Regions()))
	for _, r := range catalog.Regions() {
		buttons = append(buttons, btn(r.Name, wizard.RegionData(r.Code)))
	}
	rows := chunk(buttons, 2)
	rows = append(rows, []telebot.InlineButton{btn("✖ Скасувати", wizard.CancelData)})
	return markup(rows...)
}

func queueKeyboard(catalog *domain.Catalog, region string) *telebot.ReplyMarkup {
	queues := catalog.Queues(region)
	buttons := make([]telebot.InlineButton, 0, len(queues))
	for _, q := range queues {
		buttons = append(buttons, btn(q, wizard.QueueData(q)))
	}
	rows := chunk(buttons, 3)
	rows = append(rows, []telebot.InlineButton{btn("← Назад", wizard.BackData)})
	return markup(rows...)
}

func confirmKeyboard() *telebot.ReplyMarkup {
	return markup(
		[]telebot.InlineButton{btn("✅ Підтвердити", wizard.ConfirmData)},
		[]telebot.InlineButton{btn("← Назад", wizard.BackData)},
	)
}

// wizardNotifyTargetKeyboard — вопрос после первой настройки: куди надсилати сповіщення
func wizardNotifyTargetKeyboard() *telebot.ReplyMarkup {
	return markup(
		[]telebot.InlineButton{btn("📱 У боті", cbWizardNotifyBot)},
		[]telebot.InlineButton{btn("📢 У каналі", cbWizardNotifyChannel)},
	)
}

func editDoneKeyboard() *telebot.ReplyMarkup {
	return markup(navRow())
}

func settingsKeyboard(admin bool) *telebot.ReplyMarkup {
	rows := [][]telebot.InlineButton{
		{btn("📍 Регіон і черга", cbSettingsRegion)},
		{btn("🔔 Сповіщення", cbSettingsAlerts), btn("🎯 Куди надсилати", cbSettingsNotify)},
		{btn("📢 Канал", cbSettingsChannel), btn("📡 IP роутера", cbSettingsIP)},
		{btn("🎨 Формат", cbSettingsFormat)},
		{btn("🗑 Видалити дані", cbDeleteAccount)},
	}
	if admin {
		rows = append(rows, []telebot.InlineButton{btn("🔧 Адмін-панель", cbAdminPanel)})
	}
	rows = append(rows, []telebot.InlineButton{btn("⤴︎ Меню", cbMainMenu)})
	return markup(rows...)
}

func alertsKeyboard(u domain.User) *telebot.ReplyMarkup {
	toggle := "🔔 Увімкнути"
	if u.AlertBeforeMinutes > 0 {
		toggle = "🔕 Вимкнути"
	}
	buttons := make([]telebot.InlineButton, 0, len(alertOptions))
	for _, m := range alertOptions {
		label := fmt.Sprintf("%d хв", m)
		if m == u.AlertBeforeMinutes {
			label = "✓ " + label
		}
		buttons = append(buttons, btn(label, cbAlertTimePref+strconv.Itoa(m)))
	}
	rows := [][]telebot.InlineButton{{btn(toggle, cbAlertToggle)}}
	rows = append(rows, chunk(buttons, 5)...)
	rows = append(rows, navRow())
	return markup(rows...)
}

func notifyTargetKeyboard(current domain.NotifyTarget) *telebot.ReplyMarkup {
	mark := func(t domain.NotifyTarget, label string) string {
		if t == current {
			return "✓ " + label
		}
		return label
	}
	return markup(
		[]telebot.InlineButton{btn(mark(domain.NotifyBot, "📱 У боті"), cbNotifyBot)},
		[]telebot.InlineButton{btn(mark(domain.NotifyChannel, "📢 У каналі"), cbNotifyChannel)},
		[]telebot.InlineButton{btn(mark(domain.NotifyBoth, "📱+📢 Всюди"), cbNotifyBoth)},
		navRow(),
	)
}

func ipKeyboard(hasIP bool) *telebot.ReplyMarkup {
	rows := [][]telebot.InlineButton{}
	if hasIP {
		rows = append(rows, []telebot.InlineButton{btn("🗑 Видалити IP", cbIPClear)})
	}
	rows = append(rows, navRow())
	return markup(rows...)
}

func formatKeyboard(f domain.FormatSettings) *telebot.ReplyMarkup {
	del := "☐ Видаляти старий графік"
	if f.DeleteOldMessage {
		del = "☑ Видаляти старий графік"
	}
	return markup(
		[]telebot.InlineButton{btn("— Графік —", cbFormatNoop)},
		[]telebot.InlineButton{btn("📝 Підпис", cbFormatCaption), btn("🕐 Формат періоду", cbFormatPeriod)},
		[]telebot.InlineButton{btn(del, cbFormatDeleteToggle)},
		[]telebot.InlineButton{btn("— Світло —", cbFormatNoop)},
		[]telebot.InlineButton{btn("🔴 Світло зникло", cbFormatPowerOff), btn("🟢 Світло є", cbFormatPowerOn)},
		[]telebot.InlineButton{btn("↺ Скинути", cbFormatReset)},
		[]telebot.InlineButton{btn("🧪 Тестова публікація", cbFormatTest)},
		navRow(),
	)
}

func testKeyboard() *telebot.ReplyMarkup {
	return markup(
		[]telebot.InlineButton{btn("📅 Графік", cbTestSchedule), btn("💡 Світло", cbTestPower)},
		[]telebot.InlineButton{btn("← Назад", cbSettingsFormat), btn("⤴︎ Меню", cbMainMenu)},
	)
}

func deleteConfirmKeyboard() *telebot.ReplyMarkup {
	return markup(
		[]telebot.InlineButton{btn("🗑 Так, видалити", cbDeleteConfirm)},
		[]telebot.InlineButton{btn("← Скасувати", cbMenuSettings)},
	)
}

func channelKeyboard(u domain.User) *telebot.ReplyMarkup {
	if u.HasChannel() {
		return markup(
			[]telebot.InlineButton{btn("🔌 Відключити канал", cbChannelDisconnect)},
			navRow(),
		)
	}
	return markup(
		[]telebot.InlineButton{btn("🔗 Підключити канал", cbChannelConnect)},
		navRow(),
	)
}

func pendingChannelsKeyboard(channels []PendingChannel) *telebot.ReplyMarkup {
	rows := make([][]telebot.InlineButton, 0, len(channels)+1)
	for _, ch := range channels {
		title := ch.Title
		if title == "" {
			title = strconv.FormatInt(ch.ID, 10)
		}
		rows = append(rows, []telebot.InlineButton{
			btn("✅ "+title, cbChannelConfirmPref+strconv.FormatInt(ch.ID, 10)),
		})
	}
	rows = append(rows, navRow())
	return markup(rows...)
}

func adminKeyboard(paused bool) *telebot.ReplyMarkup {
	pause := "⏸️ Пауза"
	if paused {
		pause = "▶️ Пауза (увімкнена)"
	}
	return markup(
		[]telebot.InlineButton{btn("📊 Статистика", cbAdminStats)},
		[]telebot.InlineButton{btn("⏱ Інтервали", cbAdminIntervals)},
		[]telebot.InlineButton{btn(pause, cbAdminPause)},
		[]telebot.InlineButton{btn("⤴︎ Меню", cbMainMenu)},
	)
}

func adminBackRow() []telebot.InlineButton {
	return []telebot.InlineButton{btn("← Назад", cbAdminPanel), btn("⤴︎ Меню", cbMainMenu)}
}

func adminIntervalsKeyboard(schedule, power time.Duration) *telebot.ReplyMarkup {
	sched := make([]telebot.InlineButton, 0, len(scheduleIntervalOptions))
	for _, s := range scheduleIntervalOptions {
		label := humanSeconds(s)
		if time.Duration(s)*time.Second == schedule {
			label = "✓ " + label
		}
		sched = append(sched, btn("📅 "+label, cbAdminSchedulePref+strconv.Itoa(s)))
	}
	ip := make([]telebot.InlineButton, 0, len(powerIntervalOptions))
	for _, s := range powerIntervalOptions {
		label := humanSeconds(s)
		if time.Duration(s)*time.Second == power {
			label = "✓ " + label
		}
		ip = append(ip, btn("📡 "+label, cbAdminIPPref+strconv.Itoa(s)))
	}
	rows := chunk(sched, 3)
	rows = append(rows, chunk(ip, 3)...)
	rows = append(rows, adminBackRow())
	return markup(rows...)
}

func pauseKeyboard(paused bool) *telebot.ReplyMarkup {
	toggle := "⏸️ Увімкнути паузу"
	if paused {
		toggle = "▶️ Вимкнути паузу"
	}
	return markup(
		[]telebot.InlineButton{btn(toggle, cbPauseToggle)},
		[]telebot.InlineButton{btn("✏️ Повідомлення паузи", cbPauseMessage)},
		adminBackRow(),
	)
}

func pauseTemplatesKeyboard() *telebot.ReplyMarkup {
	rows := make([][]telebot.InlineButton, 0, len(settings.PauseTemplates)+2)
	for i, tpl := range settings.PauseTemplates {
		rows = append(rows, []telebot.InlineButton{btn(tpl, cbPauseTemplatePref+strconv.Itoa(i+1))})
	}
	rows = append(rows,
		[]telebot.InlineButton{btn("✍️ Свій текст", cbPauseCustom)},
		[]telebot.InlineButton{btn("← Назад", cbAdminPause), btn("⤴︎ Меню", cbMainMenu)},
	)
	return markup(rows...)
}

func humanSeconds(s int) string {
	switch {
	case s < 60:
		return fmt.Sprintf("%d с", s)
	case s%60 == 0:
		return fmt.Sprintf("%d хв", s/60)
	default:
		return fmt.Sprintf("%d с", s)
	}
}
