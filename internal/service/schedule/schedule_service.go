package schedule

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/pkg/botfmt"
	"github.com/Ivan200424/Voltyk/internal/service/notify"
)

//go:generate mockgen -source=schedule_service.go -destination=mocks/mock_schedule.go -package=mocks

// Бизнес-логика - проверка графиков, публикации и предупреждения

type UserRepository interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	UpdateLastSchedule(ctx context.Context, telegramID, hash string, messageID int) error
}

type Source interface {
	FetchRegion(ctx context.Context, region string) (domain.RegionSchedule, error)
}

type PauseChecker interface {
	IsPaused(ctx context.Context) bool
}

type RegionNamer interface {
	RegionName(code string) string
}

type Service struct {
	users    UserRepository
	source   Source
	notifier *notify.Notifier
	pause    PauseChecker
	regions  RegionNamer
	clock    Clock
	log      *slog.Logger

	mu      sync.Mutex
	alerted map[string]time.Time
}

func NewService(users UserRepository, source Source, notifier *notify.Notifier, pause PauseChecker,
	regions RegionNamer, clock Clock, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		source:   source,
		notifier: notifier,
		pause:    pause,
		regions:  regions,
		clock:    clock,
		log:      log,
		alerted:  make(map[string]time.Time),
	}
}

// CheckAll выполняет одну итерацию проверки:
//  1. Загружает активных пользователей и группирует по региону.
//  2. Для каждого региона один раз запрашивает графики.
//  3. Публикует график тем, у кого изменился хотя бы один из оставшихся дней.
//  4. Рассылает предупреждения о скором отключении.
//
// Возвращает количество опубликованных графиков.
func (s *Service) CheckAll(ctx context.Context) (int, error) {
	if s.pause.IsPaused(ctx) {
		s.log.Debug("schedule.check skipped: paused")
		return 0, nil
	}

	users, err := s.users.ListActive(ctx)
	if err != nil {
		s.log.Error("schedule.list users failed", slog.String("err", err.Error()))
		return 0, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return 0, nil
	}

	byRegion := make(map[string][]domain.User)
	for _, u := range users {
		byRegion[u.Region] = append(byRegion[u.Region], u)
	}

	now := s.clock.Now()
	published := 0
	for region, regionUsers := range byRegion {
		if ctx.Err() != nil {
			return published, ctx.Err()
		}
		rs, err := s.source.FetchRegion(ctx, region)
		if err != nil {
			s.log.Error("schedule.fetch failed", slog.String("region", region), slog.String("err", err.Error()))
			continue
		}
		for _, u := range regionUsers {
			days := upcomingDays(rs, u.Queue, now)
			// пустой ответ источника не публикуем, иначе сотрём последний график
			if len(days) > 0 && Changed(u.LastScheduleHash, days) {
				if err := s.publish(ctx, u, days, Hash(days)); err != nil {
					s.log.Error("schedule.publish failed",
						slog.String("telegram_id", u.TelegramID),
						slog.String("err", err.Error()))
				} else {
					published++
				}
			}
			if u.AlertBeforeMinutes > 0 {
				s.alert(ctx, u, days, now)
			}
		}
	}
	s.pruneAlerts(now)

	s.log.Info("schedule.check done", slog.Int("users", len(users)), slog.Int("published", published))
	return published, nil
}

// Today - график очереди пользователя на сегодня
func (s *Service) Today(ctx context.Context, u domain.User) (string, error) {
	rs, err := s.source.FetchRegion(ctx, u.Region)
	if err != nil {
		return "", s.wrapFetch(err)
	}
	now := s.clock.Now()
	var today []domain.DaySchedule
	for _, d := range rs.QueueDays(u.Queue) {
		if sameDay(d.Date, now) {
			today = append(today, d)
		}
	}
	return botfmt.FormatSchedule(today, s.regions.RegionName(u.Region), u.Queue, u.Format), nil
}

// PublishTest - принудительная публикация текущего графика
func (s *Service) PublishTest(ctx context.Context, u domain.User) error {
	rs, err := s.source.FetchRegion(ctx, u.Region)
	if err != nil {
		return s.wrapFetch(err)
	}
	days := upcomingDays(rs, u.Queue, s.clock.Now())
	return s.publish(ctx, u, days, Hash(days))
}

func (s *Service) wrapFetch(err error) error {
	if errors.Is(err, derrors.ErrScheduleNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", derrors.ErrInternal, err)
}

func (s *Service) publish(ctx context.Context, u domain.User, days []domain.DaySchedule, hash string) error {
	text := botfmt.FormatSchedule(days, s.regions.RegionName(u.Region), u.Queue, u.Format)

	if u.Format.DeleteOldMessage {
		s.notifier.DeleteChannelMessage(ctx, u, u.LastScheduleMessageID)
	}
	d, err := s.notifier.Deliver(ctx, u, "schedule", text)
	if err != nil {
		return err
	}

	msgID := d.ChannelMessageID
	if msgID == 0 && !u.Format.DeleteOldMessage {
		msgID = u.LastScheduleMessageID
	}
	if err := s.users.UpdateLastSchedule(ctx, u.TelegramID, hash, msgID); err != nil {
		return fmt.Errorf("save schedule hash: %w", err)
	}
	return nil
}

func (s *Service) alert(ctx context.Context, u domain.User, days []domain.DaySchedule, now time.Time) {
	window := time.Duration(u.AlertBeforeMinutes) * time.Minute
	for _, d := range days {
		for _, p := range d.Periods {
			left := p.Start.Sub(now)
			if left <= 0 || left > window {
				continue
			}
			key := u.TelegramID + "|" + p.Start.UTC().Format(time.RFC3339)
			if !s.markAlerted(key, p.Start) {
				continue
			}
			minutes := int((left + time.Minute - 1) / time.Minute)
			if _, err := s.notifier.Deliver(ctx, u, "alert", botfmt.FormatAlert(p, minutes, u.Queue)); err != nil {
				s.log.Warn("schedule.alert failed",
					slog.String("telegram_id", u.TelegramID),
					slog.String("err", err.Error()))
			}
		}
	}
}

// markAlerted - true, если предупреждение по этому отключению ещё не отправлялось
func (s *Service) markAlerted(key string, start time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerted[key]; ok {
		return false
	}
	s.alerted[key] = start
	return true
}

func (s *Service) pruneAlerts(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, start := range s.alerted {
		if start.Before(now) {
			delete(s.alerted, k)
		}
	}
}

// upcomingDays - дни очереди начиная с сегодняшнего
func upcomingDays(rs domain.RegionSchedule, queue string, now time.Time) []domain.DaySchedule {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var out []domain.DaySchedule
	for _, d := range rs.QueueDays(queue) {
		if d.Date.Before(today) && !sameDay(d.Date, now) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

const dateLayout = "2006-01-02"

// Hash - отпечаток графика очереди по дням: "2025-11-03=<digest>;...".
// Хранится по дням, чтобы уход вчерашнего дня после полуночи не считался изменением.
func Hash(days []domain.DaySchedule) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.Date.Format(dateLayout)+"="+dayDigest(d))
	}
	return strings.Join(parts, ";")
}

func dayDigest(d domain.DaySchedule) string {
	h := sha256.New()
	for _, p := range d.Periods {
		fmt.Fprintf(h, "%d-%d,", p.Start.Unix(), p.End.Unix())
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func parseHash(stored string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(stored, ";") {
		date, digest, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[date] = digest
	}
	return out
}

// Changed - отличаются ли дни от сохранённого отпечатка. Прошедшие дни из отпечатка
// не учитываются; пропавший из источника будущий день - изменение.
func Changed(stored string, days []domain.DaySchedule) bool {
	if len(days) == 0 {
		return false
	}
	prev := parseHash(stored)
	seen := make(map[string]bool, len(days))
	first := days[0].Date.Format(dateLayout)
	for _, d := range days {
		date := d.Date.Format(dateLayout)
		seen[date] = true
		if date < first {
			first = date
		}
		if digest, ok := prev[date]; !ok || digest != dayDigest(d) {
			return true
		}
	}
	for date := range prev {
		if date >= first && !seen[date] {
			return true
		}
	}
	return false
}
