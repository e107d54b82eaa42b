package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/pkg/botfmt"
	"github.com/Ivan200424/Voltyk/internal/wizard"
)

const (
	textAccessDenied = "⛔ Доступ заборонено"
	textRegionPrompt = "1️⃣ Оберіть свій регіон:"
	textCommitFailed = "❌ Не вдалося зберегти налаштування. Спробуйте ще раз"
	textHelp         = "❓ Допомога\n\n" +
		"Бот публікує графіки відключень світла для вашої черги та попереджає перед відключенням.\n\n" +
		"/start - налаштування\n" +
		"/menu - головне меню\n" +
		"/cancel - скасувати введення\n\n" +
		"📡 Якщо вказати IP роутера, бот стежитиме за фактичною наявністю світла.\n" +
		"📢 Графіки можна публікувати у власний канал: додайте бота адміністратором каналу."
	textChannelInstructions = "📢 Підключення каналу\n\n" +
		"1. Додайте бота адміністратором свого каналу\n" +
		"2. Поверніться сюди і підтвердіть підключення"
)

func queuePrompt(regionName string) string {
	return fmt.Sprintf("📍 Регіон: %s\n2️⃣ Оберіть свою чергу:", regionName)
}

func confirmPrompt(regionName, queue string) string {
	return fmt.Sprintf("Перевірте налаштування:\n\n📍 Регіон: %s\n⚡ Черга: %s\n\nВсе вірно?", regionName, queue)
}

// wizardScreen — текст и клавиатура для текущего шага мастера
func (b *Bot) wizardScreen(s wizard.Session) (string, interface{}) {
	switch s.Step {
	case wizard.AwaitingQueue:
		return queuePrompt(b.deps.Catalog.RegionName(s.Region)), queueKeyboard(b.deps.Catalog, s.Region)
	case wizard.AwaitingConfirmation:
		return confirmPrompt(b.deps.Catalog.RegionName(s.Region), s.Queue), confirmKeyboard()
	default:
		text := textRegionPrompt
		if s.Mode == wizard.ModeEdit && s.Region != "" {
			text = fmt.Sprintf("Зараз: %s, черга %s\n\n%s", b.deps.Catalog.RegionName(s.Region), s.Queue, textRegionPrompt)
		}
		return text, regionKeyboard(b.deps.Catalog)
	}
}

func (b *Bot) mainMenuText(u domain.User, pauseMsg string) string {
	var sb strings.Builder
	sb.WriteString("🏠 Головне меню\n\n")
	fmt.Fprintf(&sb, "📍 Регіон: %s\n", b.deps.Catalog.RegionName(u.Region))
	fmt.Fprintf(&sb, "⚡ Черга: %s\n", u.Queue)
	if u.HasChannel() {
		sb.WriteString("📢 Канал: підключено\n")
	} else {
		sb.WriteString("📢 Канал: не підключено\n")
	}
	sb.WriteString("🔔 Попередження: " + alertState(u.AlertBeforeMinutes))
	if u.RouterIP != "" {
		sb.WriteString("\n📡 Світло: " + powerStateText(u.PowerState))
	}
	if pauseMsg != "" {
		sb.WriteString("\n\n" + pauseMsg)
	}
	return sb.String()
}

func alertState(minutes int) string {
	if minutes <= 0 {
		return "вимкнено"
	}
	return fmt.Sprintf("за %d хв", minutes)
}

func powerStateText(s domain.PowerState) string {
	switch s {
	case domain.PowerOn:
		return "🟢 є"
	case domain.PowerOff:
		return "🔴 немає"
	default:
		return "невідомо"
	}
}

func notifyTargetText(t domain.NotifyTarget) string {
	switch t {
	case domain.NotifyChannel:
		return "у каналі"
	case domain.NotifyBoth:
		return "у боті та каналі"
	default:
		return "у боті"
	}
}

func (b *Bot) settingsText(u domain.User) string {
	var sb strings.Builder
	sb.WriteString("⚙️ Налаштування\n\n")
	fmt.Fprintf(&sb, "📍 %s, черга %s\n", b.deps.Catalog.RegionName(u.Region), u.Queue)
	fmt.Fprintf(&sb, "🎯 Сповіщення: %s\n", notifyTargetText(u.NotifyTarget))
	fmt.Fprintf(&sb, "🔔 Попередження: %s\n", alertState(u.AlertBeforeMinutes))
	ip := "не вказано"
	if u.RouterIP != "" {
		ip = u.RouterIP
	}
	fmt.Fprintf(&sb, "📡 IP роутера: %s", ip)
	return sb.String()
}

func alertsText(u domain.User) string {
	return "🔔 Попередження перед відключенням\n\nЗараз: " + alertState(u.AlertBeforeMinutes) +
		"\n\nОберіть, за скільки хвилин попереджати:"
}

func routerIPText(u domain.User) string {
	current := "не вказано"
	if u.RouterIP != "" {
		current = u.RouterIP
	}
	return "📡 IP роутера\n\nЗараз: " + current + "\n\n" +
		"Надішліть зовнішню IP-адресу роутера (наприклад 93.175.1.2 або 93.175.1.2:8080).\n" +
		"Бот перевірятиме її доступність і повідомлятиме, коли світло зникає чи з'являється."
}

func formatText(f domain.FormatSettings) string {
	f = botfmt.WithDefaults(f)
	return "🎨 Формат публікацій\n\n" +
		"Підпис графіка:\n" + f.ScheduleCaption + "\n\n" +
		"Формат періоду:\n" + f.PeriodFormat + "\n\n" +
		"Світло зникло:\n" + f.PowerOffText + "\n\n" +
		"Світло з'явилося:\n" + f.PowerOnText
}

func formatPrompt(k ConvKind) string {
	switch k {
	case ConvFormatCaption:
		return "📝 Надішліть підпис графіка.\nДоступно: {date}, {region}, {queue}"
	case ConvFormatPeriod:
		return "🕐 Надішліть формат періоду.\nДоступно: {from}, {to}, {duration}"
	case ConvFormatPowerOff:
		return "🔴 Надішліть текст для відключення світла.\nДоступно: {time}, {date}, {duration}"
	default:
		return "🟢 Надішліть текст для появи світла.\nДоступно: {time}, {date}, {duration}"
	}
}

func channelText(u domain.User) string {
	if u.HasChannel() {
		return fmt.Sprintf("📢 Канал\n\nПідключено канал %d", u.ChannelID)
	}
	return textChannelInstructions
}

// userStatsText — статистика пользователя: настройки и последнее изменение света
func (b *Bot) userStatsText(u domain.User, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("📊 Ваша статистика\n\n")
	fmt.Fprintf(&sb, "📍 Регіон: %s\n", b.deps.Catalog.RegionName(u.Region))
	fmt.Fprintf(&sb, "⚡ Черга: %s\n", u.Queue)
	fmt.Fprintf(&sb, "🎯 Сповіщення: %s\n", notifyTargetText(u.NotifyTarget))
	if u.HasChannel() {
		sb.WriteString("📢 Канал: підключено\n")
	} else {
		sb.WriteString("📢 Канал: не підключено\n")
	}
	fmt.Fprintf(&sb, "🔔 Попередження: %s\n", alertState(u.AlertBeforeMinutes))
	if u.RouterIP == "" {
		sb.WriteString("📡 IP роутера: не вказано")
		return sb.String()
	}
	sb.WriteString("📡 IP роутера: вказано\n")
	sb.WriteString("💡 Світло: " + powerStateText(u.PowerState))
	if u.PowerChangedAt != nil {
		fmt.Fprintf(&sb, "\n🕐 Змінилось: %s (%s тому)",
			u.PowerChangedAt.Format("02.01.2006 15:04"), botfmt.FormatDuration(now.Sub(*u.PowerChangedAt)))
	}
	return sb.String()
}

func (b *Bot) statsText(s domain.Stats) string {
	var sb strings.Builder
	sb.WriteString("📊 Статистика\n\n")
	fmt.Fprintf(&sb, "👥 Користувачів: %d\n", s.Total)
	fmt.Fprintf(&sb, "✅ Активних: %d\n", s.Active)
	fmt.Fprintf(&sb, "📢 З каналом: %d\n", s.WithChannel)
	fmt.Fprintf(&sb, "📡 З IP: %d\n", s.WithIP)
	if len(s.ByRegion) > 0 {
		sb.WriteString("\nЗа регіонами:\n")
		for _, r := range b.deps.Catalog.Regions() {
			if n := s.ByRegion[r.Code]; n > 0 {
				fmt.Fprintf(&sb, "📍 %s: %d\n", r.Name, n)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func intervalsText(schedule, power time.Duration) string {
	return "⏱ Інтервали перевірок\n\n" +
		"📅 Графіки: кожні " + humanSeconds(int(schedule/time.Second)) + "\n" +
		"📡 Світло (IP): кожні " + humanSeconds(int(power/time.Second))
}

func pauseText(paused bool, msg string) string {
	state := "▶️ Бот працює"
	if paused {
		state = "⏸️ Бот на паузі"
	}
	return "⏸️ Режим паузи\n\n" + state + "\n\nПовідомлення для користувачів:\n" + msg
}
