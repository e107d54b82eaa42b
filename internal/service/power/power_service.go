package power

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/metrics"
	"github.com/Ivan200424/Voltyk/internal/pkg/botfmt"
	"github.com/Ivan200424/Voltyk/internal/service/notify"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=power_service.go -destination=mocks/mock_power.go -package=mocks

type UserRepository interface {
	ListWithRouterIP(ctx context.Context) ([]domain.User, error)
	UpdatePowerState(ctx context.Context, telegramID string, state domain.PowerState, at time.Time) error
}

type Prober interface {
	Probe(ctx context.Context, address string) bool
}

type PauseChecker interface {
	IsPaused(ctx context.Context) bool
}

// pending - подряд идущие наблюдения, расходящиеся с сохранённым состоянием
type pending struct {
	state domain.PowerState
	count int
}

type Service struct {
	users         UserRepository
	prober        Prober
	notifier      *notify.Notifier
	pause         PauseChecker
	log           *slog.Logger
	confirmations int
	workers       int
	now           func() time.Time

	mu      sync.Mutex
	pending map[string]pending
}

func NewService(users UserRepository, prober Prober, notifier *notify.Notifier, pause PauseChecker,
	confirmations, workers int, log *slog.Logger) *Service {
	if confirmations < 1 {
		confirmations = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &Service{
		users:         users,
		prober:        prober,
		notifier:      notifier,
		pause:         pause,
		log:           log,
		confirmations: confirmations,
		workers:       workers,
		now:           time.Now,
		pending:       make(map[string]pending),
	}
}

// WithClock - подмена часов для тестов
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckAll - один цикл опроса роутеров. Возвращает количество зафиксированных смен состояния.
func (s *Service) CheckAll(ctx context.Context) (int, error) {
	if s.pause.IsPaused(ctx) {
		s.log.Debug("power.check skipped: paused")
		return 0, nil
	}

	users, err := s.users.ListWithRouterIP(ctx)
	if err != nil {
		s.log.Error("power.list users failed", slog.String("err", err.Error()))
		return 0, fmt.Errorf("list users: %w", err)
	}

	var changed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, u := range users {
		g.Go(func() error {
			ok, err := s.observe(gctx, u, s.probe(gctx, u.RouterIP))
			if err != nil {
				s.log.Error("power.observe failed",
					slog.String("telegram_id", u.TelegramID),
					slog.String("err", err.Error()))
				return nil
			}
			if ok {
				changed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	s.forgetMissing(users)
	return int(changed.Load()), nil
}

// Current - разовая проверка для тестовой публикации
func (s *Service) Current(ctx context.Context, u domain.User) (domain.PowerState, error) {
	if u.RouterIP == "" {
		return domain.PowerUnknown, derrors.ErrInvalidIP
	}
	return s.probe(ctx, u.RouterIP), nil
}

// PublishTest - отправляет сообщение о текущем состоянии так, как его увидят подписчики
func (s *Service) PublishTest(ctx context.Context, u domain.User) error {
	state, err := s.Current(ctx, u)
	if err != nil {
		return err
	}
	text := botfmt.FormatPowerChange(state, u.Format, s.now(), u.PowerChangedAt)
	if _, err := s.notifier.Deliver(ctx, u, "power_test", text); err != nil {
		return fmt.Errorf("%w: %w", derrors.ErrInternal, err)
	}
	return nil
}

func (s *Service) probe(ctx context.Context, address string) domain.PowerState {
	if s.prober.Probe(ctx, address) {
		metrics.PowerProbes.WithLabelValues("on").Inc()
		return domain.PowerOn
	}
	metrics.PowerProbes.WithLabelValues("off").Inc()
	return domain.PowerOff
}

// observe - учитывает наблюдение; смена принимается после confirmations одинаковых подряд
func (s *Service) observe(ctx context.Context, u domain.User, obs domain.PowerState) (bool, error) {
	if !s.confirmed(u, obs) {
		return false, nil
	}

	at := s.now()
	if err := s.users.UpdatePowerState(ctx, u.TelegramID, obs, at); err != nil {
		return false, fmt.Errorf("save power state: %w", err)
	}
	s.log.Info("power.state changed",
		slog.String("telegram_id", u.TelegramID),
		slog.String("from", string(u.PowerState)),
		slog.String("to", string(obs)))

	// первое наблюдение только запоминаем
	if u.PowerState == domain.PowerUnknown {
		return true, nil
	}
	text := botfmt.FormatPowerChange(obs, u.Format, at, u.PowerChangedAt)
	if _, err := s.notifier.Deliver(ctx, u, "power", text); err != nil {
		s.log.Warn("power.notify failed", slog.String("telegram_id", u.TelegramID), slog.String("err", err.Error()))
	}
	return true, nil
}

func (s *Service) confirmed(u domain.User, obs domain.PowerState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if obs == u.PowerState {
		delete(s.pending, u.TelegramID)
		return false
	}
	p := s.pending[u.TelegramID]
	if p.state == obs {
		p.count++
	} else {
		p = pending{state: obs, count: 1}
	}
	if p.count >= s.confirmations {
		delete(s.pending, u.TelegramID)
		return true
	}
	s.pending[u.TelegramID] = p
	return false
}

// забываем наблюдения пользователей, которые убрали IP
func (s *Service) forgetMissing(users []domain.User) {
	active := make(map[string]struct{}, len(users))
	for _, u := range users {
		active[u.TelegramID] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.pending {
		if _, ok := active[id]; !ok {
			delete(s.pending, id)
		}
	}
}
