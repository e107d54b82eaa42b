package wizard

// Mode - новый пользователь или редактирование существующей записи
type Mode int

const (
	ModeNew Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "new"
}

// Step - текущий шаг диалога. Committed и Abandoned терминальны и
// выражаются удалением сессии из хранилища.
type Step int

const (
	AwaitingRegion Step = iota
	AwaitingQueue
	AwaitingConfirmation
)

func (s Step) String() string {
	switch s {
	case AwaitingRegion:
		return "awaiting_region"
	case AwaitingQueue:
		return "awaiting_queue"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	default:
		return "unknown"
	}
}

// Session - состояние мастера для одного пользователя; живёт только в памяти
type Session struct {
	ID          string
	DisplayName string
	Mode        Mode
	Region      string
	Queue       string
	Step        Step
}
