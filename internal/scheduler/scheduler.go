package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ivan200424/Voltyk/internal/metrics"
)

// Job - одна итерация фоновой задачи; возвращает количество обработанных элементов
type Job func(ctx context.Context) (int, error)

// IntervalFunc - интервал перечитывается перед каждым циклом
type IntervalFunc func(ctx context.Context) time.Duration

// Fixed - постоянный интервал
func Fixed(d time.Duration) IntervalFunc {
	return func(context.Context) time.Duration { return d }
}

type Scheduler struct {
	name     string
	job      Job
	interval IntervalFunc
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика фоновой задачи
func NewScheduler(name string, job Job, interval IntervalFunc, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		job:      job,
		interval: interval,
		logger:   logger.With(slog.String("job", name)),
	}
}

// Start — запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")

	// первый запуск сразу
	s.runOnce(ctx)

	current := s.next(ctx)
	timer := time.NewTimer(current)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.runOnce(ctx)
			if d := s.next(ctx); d != current {
				s.logger.Info("scheduler interval changed", slog.Duration("from", current), slog.Duration("to", d))
				current = d
			}
			timer.Reset(current)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) next(ctx context.Context) time.Duration {
	d := s.interval(ctx)
	if d <= 0 {
		d = time.Minute
	}
	return d
}

// runOnce — одна итерация с логированием и метриками
func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	n, err := s.job(ctx)
	if err != nil {
		metrics.SchedulerRuns.WithLabelValues(s.name, "error").Inc()
		s.logger.Error("tick: job failed", slog.String("err", err.Error()))
		return
	}
	metrics.SchedulerRuns.WithLabelValues(s.name, "ok").Inc()
	s.logger.Debug("tick: completed", slog.Int("processed", n), slog.Duration("duration", time.Since(started)))
}
