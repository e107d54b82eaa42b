package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/metrics"
	"github.com/Ivan200424/Voltyk/internal/repository"
)

//go:generate mockgen -source=wizard.go -destination=mocks/mock_wizard.go -package=mocks

// UserRepository - сохранение результата мастера
type UserRepository interface {
	CreateUser(ctx context.Context, telegramID, username, region, queue string) (domain.User, error)
	UpdateUserRegionQueue(ctx context.Context, telegramID, region, queue string) (domain.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID string) (domain.User, error)
}

// Catalog - допустимые регионы и очереди
type Catalog interface {
	HasRegion(code string) bool
	HasQueue(region, queue string) bool
}

// Result - итог обработки одного события
type Result struct {
	Session   Session
	Changed   bool
	Committed bool
	Abandoned bool
	// Ignored - событие не подошло текущему шагу или сессии нет; состояние не менялось
	Ignored   bool
	NoSession bool
	User      domain.User
}

// Machine - пошаговый мастер регион -> очередь -> подтверждение.
// В хранилище пользователей пишет только на подтверждении.
type Machine struct {
	store   *Store
	users   UserRepository
	catalog Catalog
	logger  *slog.Logger
	timeout time.Duration
}

func NewMachine(store *Store, users UserRepository, catalog Catalog, logger *slog.Logger) *Machine {
	return &Machine{
		store:   store,
		users:   users,
		catalog: catalog,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Begin - новая сессия; существующая сессия того же пользователя сбрасывается.
// prefill заполняет регион и очередь в режиме редактирования, но ничего не сохраняет.
func (m *Machine) Begin(id, displayName string, mode Mode, prefill *domain.User) Session {
	unlock := m.store.Lock(id)
	defer unlock()

	if _, existed := m.store.Get(id); existed {
		metrics.WizardTransitions.WithLabelValues("abandoned").Inc()
		m.logger.Debug("wizard: previous session reset", slog.String("telegram_id", id))
	}

	s := Session{ID: id, DisplayName: displayName, Mode: mode, Step: AwaitingRegion}
	if prefill != nil {
		s.Region = prefill.Region
		s.Queue = prefill.Queue
	}
	m.store.Put(s)
	m.syncGauge()

	metrics.WizardTransitions.WithLabelValues("started").Inc()
	m.logger.Info("wizard: started",
		slog.String("telegram_id", id),
		slog.String("mode", mode.String()),
	)
	return s
}

// Session - текущая сессия пользователя
func (m *Machine) Session(id string) (Session, bool) { return m.store.Get(id) }

// Abandon - пользователь ушёл из мастера
func (m *Machine) Abandon(id string) {
	unlock := m.store.Lock(id)
	defer unlock()
	if _, ok := m.store.Get(id); ok {
		m.store.Delete(id)
		m.syncGauge()
		metrics.WizardTransitions.WithLabelValues("abandoned").Inc()
	}
}

// Sweep - удаление брошенных сессий
func (m *Machine) Sweep(ttl time.Duration) int {
	n := m.store.Sweep(ttl)
	if n > 0 {
		m.syncGauge()
		m.logger.Info("wizard: stale sessions swept", slog.Int("count", n))
	}
	return n
}

// Handle - переход по событию. Ошибка возвращается только при сбое сохранения
// на подтверждении; в этом случае сессия остаётся и подтверждение можно повторить.
func (m *Machine) Handle(ctx context.Context, id string, ev Event) (Result, error) {
	unlock := m.store.Lock(id)
	defer unlock()

	s, ok := m.store.Get(id)
	if !ok {
		metrics.WizardTransitions.WithLabelValues("no_session").Inc()
		m.logger.Debug("wizard: event without session",
			slog.String("telegram_id", id),
			slog.String("event", ev.Kind.String()),
		)
		return Result{Ignored: true, NoSession: true}, nil
	}

	switch ev.Kind {
	case EventCancel:
		m.store.Delete(id)
		m.syncGauge()
		metrics.WizardTransitions.WithLabelValues("abandoned").Inc()
		return Result{Session: s, Abandoned: true}, nil

	case EventBack:
		switch s.Step {
		case AwaitingQueue:
			s.Step = AwaitingRegion
		case AwaitingConfirmation:
			s.Step = AwaitingQueue
		default:
			return m.ignore(s, ev), nil
		}

	case EventRegionSelected:
		if s.Step != AwaitingRegion || !m.catalog.HasRegion(ev.Value) {
			return m.ignore(s, ev), nil
		}
		if s.Region != ev.Value {
			s.Queue = ""
		}
		s.Region = ev.Value
		s.Step = AwaitingQueue

	case EventQueueSelected:
		if s.Step != AwaitingQueue || !m.catalog.HasQueue(s.Region, ev.Value) {
			return m.ignore(s, ev), nil
		}
		s.Queue = ev.Value
		s.Step = AwaitingConfirmation

	case EventConfirmed:
		if s.Step != AwaitingConfirmation || s.Region == "" || s.Queue == "" {
			return m.ignore(s, ev), nil
		}
		return m.commit(ctx, s)

	default:
		return m.ignore(s, ev), nil
	}

	m.store.Put(s)
	metrics.WizardTransitions.WithLabelValues(s.Step.String()).Inc()
	return Result{Session: s, Changed: true}, nil
}

func (m *Machine) ignore(s Session, ev Event) Result {
	metrics.WizardTransitions.WithLabelValues("ignored").Inc()
	m.logger.Debug("wizard: event ignored",
		slog.String("telegram_id", s.ID),
		slog.String("step", s.Step.String()),
		slog.String("event", ev.Kind.String()),
		slog.String("value", ev.Value),
	)
	return Result{Session: s, Ignored: true}
}

func (m *Machine) commit(ctx context.Context, s Session) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var (
		user domain.User
		err  error
	)
	switch s.Mode {
	case ModeEdit:
		user, err = m.users.UpdateUserRegionQueue(ctx, s.ID, s.Region, s.Queue)
		if errors.Is(err, repository.ErrNotFound) {
			// запись удалили, пока шло редактирование - создаём заново
			m.logger.Warn("wizard: edited user missing, creating", slog.String("telegram_id", s.ID))
			user, err = m.users.CreateUser(ctx, s.ID, s.DisplayName, s.Region, s.Queue)
		}
	default:
		user, err = m.users.CreateUser(ctx, s.ID, s.DisplayName, s.Region, s.Queue)
	}
	if err != nil {
		metrics.WizardTransitions.WithLabelValues("commit_failed").Inc()
		m.logger.Error("wizard: commit failed",
			slog.String("telegram_id", s.ID),
			slog.String("mode", s.Mode.String()),
			slog.String("err", err.Error()),
		)
		return Result{Session: s}, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	m.store.Delete(s.ID)
	m.syncGauge()
	metrics.WizardTransitions.WithLabelValues("committed").Inc()
	m.logger.Info("wizard: committed",
		slog.String("telegram_id", s.ID),
		slog.String("mode", s.Mode.String()),
		slog.String("region", s.Region),
		slog.String("queue", s.Queue),
	)
	return Result{Session: s, Committed: true, User: user}, nil
}

func (m *Machine) syncGauge() {
	metrics.WizardSessions.Set(float64(m.store.Len()))
}
