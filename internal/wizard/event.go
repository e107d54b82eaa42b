package wizard

import "strings"

// EventKind - закрытый набор событий мастера
type EventKind int

const (
	EventUnknown EventKind = iota
	EventRegionSelected
	EventQueueSelected
	EventConfirmed
	EventBack
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventRegionSelected:
		return "region_selected"
	case EventQueueSelected:
		return "queue_selected"
	case EventConfirmed:
		return "confirmed"
	case EventBack:
		return "back"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event - событие с полезной нагрузкой (код региона или очередь)
type Event struct {
	Kind  EventKind
	Value string
}

const (
	regionPrefix = "region_"
	queuePrefix  = "queue_"

	ConfirmData = "confirm_setup"
	BackData    = "wizard_back"
	CancelData  = "wizard_cancel"
)

func RegionSelected(code string) Event { return Event{Kind: EventRegionSelected, Value: code} }
func QueueSelected(queue string) Event { return Event{Kind: EventQueueSelected, Value: queue} }
func Confirmed() Event                 { return Event{Kind: EventConfirmed} }
func Back() Event                      { return Event{Kind: EventBack} }
func Cancel() Event                    { return Event{Kind: EventCancel} }

// RegionData / QueueData - callback data для кнопок клавиатуры
func RegionData(code string) string { return regionPrefix + code }
func QueueData(queue string) string { return queuePrefix + queue }

// ParseEvent - декодирует callback data один раз на границе.
// false означает, что данные не относятся к мастеру.
func ParseEvent(data string) (Event, bool) {
	switch {
	case data == ConfirmData:
		return Confirmed(), true
	case data == BackData:
		return Back(), true
	case data == CancelData:
		return Cancel(), true
	case strings.HasPrefix(data, regionPrefix):
		v := strings.TrimPrefix(data, regionPrefix)
		if v == "" {
			return Event{}, false
		}
		return RegionSelected(v), true
	case strings.HasPrefix(data, queuePrefix):
		v := strings.TrimPrefix(data, queuePrefix)
		if v == "" {
			return Event{}, false
		}
		return QueueSelected(v), true
	}
	return Event{}, false
}
