package botfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
)

const (
	DefaultScheduleCaption = "⚡ Графік відключень на {date}"
	DefaultPeriodFormat    = "🪫 {from} - {to} (~{duration})"
	DefaultPowerOffText    = "🔴 {time} Світло зникло\n🕓 Воно було {duration}"
	DefaultPowerOnText     = "🟢 {time} Світло з'явилося\n🕓 Його не було {duration}"
)

// DateTime - текущие дата и время в виде, удобном для шаблонов
type DateTime struct {
	TimeStr string
	DateStr string
}

// CurrentDateTime — значения {time} и {date}
func CurrentDateTime(now time.Time) DateTime {
	return DateTime{TimeStr: now.Format("15:04"), DateStr: now.Format("02.01.2006")}
}

// FormatTemplate — подстановка {name} из vars; неизвестные плейсхолдеры остаются как есть
func FormatTemplate(tpl string, vars map[string]string) string {
	if tpl == "" || len(vars) == 0 {
		return tpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// WithDefaults - пустые поля заменяются шаблонами по умолчанию
func WithDefaults(f domain.FormatSettings) domain.FormatSettings {
	if f.ScheduleCaption == "" {
		f.ScheduleCaption = DefaultScheduleCaption
	}
	if f.PeriodFormat == "" {
		f.PeriodFormat = DefaultPeriodFormat
	}
	if f.PowerOffText == "" {
		f.PowerOffText = DefaultPowerOffText
	}
	if f.PowerOnText == "" {
		f.PowerOnText = DefaultPowerOnText
	}
	return f
}

// FormatDuration — "2 год 30 хв", "45 хв"
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "менше хвилини"
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%d хв", m)
	case m == 0:
		return fmt.Sprintf("%d год", h)
	default:
		return fmt.Sprintf("%d год %d хв", h, m)
	}
}

// FormatSchedule — публикация графика очереди на несколько дней
func FormatSchedule(days []domain.DaySchedule, regionName, queue string, f domain.FormatSettings) string {
	f = WithDefaults(f)
	if len(days) == 0 {
		return fmt.Sprintf("📍 %s, черга %s\nГрафік ще не опубліковано", regionName, queue)
	}

	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTemplate(f.ScheduleCaption, map[string]string{
			"date":   day.Date.Format("02.01.2006"),
			"region": regionName,
			"queue":  queue,
		}))
		b.WriteString(fmt.Sprintf("\n📍 %s, черга %s\n", regionName, queue))

		if len(day.Periods) == 0 {
			b.WriteString("✅ Відключень не заплановано")
			continue
		}
		for _, p := range day.Periods {
			b.WriteString(FormatPeriod(p, f.PeriodFormat))
			b.WriteByte('\n')
		}
		b.WriteString("Всього без світла: ~" + FormatDuration(day.TotalOff()))
	}
	return b.String()
}

// FormatPeriod — одна строка периода по шаблону
func FormatPeriod(p domain.Period, tpl string) string {
	if tpl == "" {
		tpl = DefaultPeriodFormat
	}
	return FormatTemplate(tpl, map[string]string{
		"from":     p.Start.Format("15:04"),
		"to":       clockEnd(p),
		"duration": FormatDuration(p.Duration()),
	})
}

// конец дня показываем как 24:00, а не 00:00
func clockEnd(p domain.Period) string {
	if p.End.Hour() == 0 && p.End.Minute() == 0 && !p.End.Equal(p.Start) {
		return "24:00"
	}
	return p.End.Format("15:04")
}

// FormatPowerChange — уведомление о смене состояния электричества.
// since - время предыдущей смены, nil если неизвестно.
func FormatPowerChange(state domain.PowerState, f domain.FormatSettings, at time.Time, since *time.Time) string {
	f = WithDefaults(f)
	tpl := f.PowerOnText
	if state == domain.PowerOff {
		tpl = f.PowerOffText
	}

	dt := CurrentDateTime(at)
	duration := "невідомо"
	if since != nil && at.After(*since) {
		duration = FormatDuration(at.Sub(*since))
	}
	return FormatTemplate(tpl, map[string]string{
		"time":     dt.TimeStr,
		"date":     dt.DateStr,
		"duration": duration,
	})
}

// FormatAlert — предупреждение о скором отключении
func FormatAlert(p domain.Period, minutesLeft int, queue string) string {
	return fmt.Sprintf("⚠️ Через %d хв відключення (черга %s)\n🪫 %s - %s",
		minutesLeft, queue, p.Start.Format("15:04"), clockEnd(p))
}
