package domain

import "time"

// NotifyTarget - куда доставлять уведомления пользователя
type NotifyTarget string

const (
	NotifyBot     NotifyTarget = "bot"
	NotifyChannel NotifyTarget = "channel"
	NotifyBoth    NotifyTarget = "both"
)

// Valid - проверка, что значение из допустимого набора
func (t NotifyTarget) Valid() bool {
	switch t {
	case NotifyBot, NotifyChannel, NotifyBoth:
		return true
	}
	return false
}

// PowerState - фактическое состояние электричества по данным пинга роутера
type PowerState string

const (
	PowerUnknown PowerState = ""
	PowerOn      PowerState = "on"
	PowerOff     PowerState = "off"
)

// FormatSettings - пользовательские шаблоны публикаций
type FormatSettings struct {
	ScheduleCaption  string `json:"schedule_caption"`
	PeriodFormat     string `json:"period_format"`
	PowerOffText     string `json:"power_off_text"`
	PowerOnText      string `json:"power_on_text"`
	DeleteOldMessage bool   `json:"delete_old_message"`
}

// User - зарегистрированный пользователь сервиса
type User struct {
	ID                    int64          `json:"id"`
	TelegramID            string         `json:"telegram_id"`
	Username              string         `json:"username"`
	Region                string         `json:"region"`
	Queue                 string         `json:"queue"`
	ChannelID             int64          `json:"channel_id,omitempty"`
	NotifyTarget          NotifyTarget   `json:"notify_target"`
	AlertBeforeMinutes    int            `json:"alert_before_minutes"`
	RouterIP              string         `json:"router_ip,omitempty"`
	Format                FormatSettings `json:"format"`
	LastScheduleHash      string         `json:"-"`
	LastScheduleMessageID int            `json:"-"`
	PowerState            PowerState     `json:"power_state,omitempty"`
	PowerChangedAt        *time.Time     `json:"power_changed_at,omitempty"`
	IsActive              bool           `json:"is_active"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// HasChannel - подключён ли канал для публикаций
func (u User) HasChannel() bool { return u.ChannelID != 0 }

// Stats - агрегированная статистика для админ-панели и HTTP API
type Stats struct {
	Total       int            `json:"total"`
	Active      int            `json:"active"`
	WithChannel int            `json:"with_channel"`
	WithIP      int            `json:"with_ip"`
	ByRegion    map[string]int `json:"by_region"`
}
