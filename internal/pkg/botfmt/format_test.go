package botfmt

import (
	"strings"
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTemplate(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		vars map[string]string
		want string
	}{
		{name: "replaces all", tpl: "Test {name} {value}", vars: map[string]string{"name": "Hello", "value": "World"}, want: "Test Hello World"},
		{name: "repeated placeholder", tpl: "{x}-{x}", vars: map[string]string{"x": "1"}, want: "1-1"},
		{name: "unknown kept", tpl: "{time} {unknown}", vars: map[string]string{"time": "10:00"}, want: "10:00 {unknown}"},
		{name: "no vars", tpl: "plain {x}", vars: nil, want: "plain {x}"},
		{name: "empty template", tpl: "", vars: map[string]string{"x": "1"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTemplate(tt.tpl, tt.vars))
		})
	}
}

func TestCurrentDateTime(t *testing.T) {
	dt := CurrentDateTime(time.Date(2025, 11, 3, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, "07:05", dt.TimeStr)
	assert.Equal(t, "03.11.2025", dt.DateStr)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "менше хвилини", FormatDuration(20*time.Second))
	assert.Equal(t, "45 хв", FormatDuration(45*time.Minute))
	assert.Equal(t, "3 год", FormatDuration(3*time.Hour))
	assert.Equal(t, "2 год 30 хв", FormatDuration(150*time.Minute))
}

func TestFormatSchedule(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	day := domain.DaySchedule{
		Date: date,
		Periods: []domain.Period{
			{Start: date.Add(8 * time.Hour), End: date.Add(10 * time.Hour)},
			{Start: date.Add(20 * time.Hour), End: date.Add(24 * time.Hour)},
		},
	}

	got := FormatSchedule([]domain.DaySchedule{day}, "Київ", "3.1", domain.FormatSettings{})
	assert.Contains(t, got, "Графік відключень на 03.11.2025")
	assert.Contains(t, got, "Київ, черга 3.1")
	assert.Contains(t, got, "08:00 - 10:00")
	assert.Contains(t, got, "20:00 - 24:00")
	assert.Contains(t, got, "Всього без світла: ~6 год")

	custom := FormatSchedule([]domain.DaySchedule{day}, "Київ", "3.1", domain.FormatSettings{
		ScheduleCaption: "Черга {queue}: {date}",
		PeriodFormat:    "{from}>{to}",
	})
	assert.True(t, strings.HasPrefix(custom, "Черга 3.1: 03.11.2025"))
	assert.Contains(t, custom, "08:00>10:00")

	empty := FormatSchedule([]domain.DaySchedule{{Date: date}}, "Київ", "3.1", domain.FormatSettings{})
	assert.Contains(t, empty, "Відключень не заплановано")

	assert.Contains(t, FormatSchedule(nil, "Київ", "3.1", domain.FormatSettings{}), "ще не опубліковано")
}

func TestFormatPowerChange(t *testing.T) {
	at := time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)
	since := at.Add(-90 * time.Minute)

	off := FormatPowerChange(domain.PowerOff, domain.FormatSettings{}, at, &since)
	assert.Contains(t, off, "14:00 Світло зникло")
	assert.Contains(t, off, "1 год 30 хв")

	on := FormatPowerChange(domain.PowerOn, domain.FormatSettings{PowerOnText: "Є світло {date} {time}, не було {duration}"}, at, nil)
	assert.Equal(t, "Є світло 03.11.2025 14:00, не було невідомо", on)
}

func TestFormatAlert(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	p := domain.Period{Start: date.Add(14 * time.Hour), End: date.Add(17*time.Hour + 30*time.Minute)}
	got := FormatAlert(p, 15, "3.1")
	assert.Contains(t, got, "Через 15 хв")
	assert.Contains(t, got, "14:00 - 17:30")
}
