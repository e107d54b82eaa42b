package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	derrors "github.com/Ivan200424/Voltyk/internal/errors"
)

//go:generate mockgen -source=settings_service.go -destination=mocks/mock_settings.go -package=mocks

// Store - key/value хранилище настроек
type Store interface {
	GetSetting(ctx context.Context, key, def string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

const (
	KeyScheduleInterval = "schedule_check_interval"
	KeyPowerInterval    = "power_check_interval"
	KeyPaused           = "bot_paused"
	KeyPauseMessage     = "pause_message"
)

const DefaultPauseMessage = "🔧 Бот тимчасово недоступний. Спробуйте пізніше."

// PauseTemplates - готовые тексты паузы для админ-панели
var PauseTemplates = [5]string{
	"🔧 Бот тимчасово недоступний. Спробуйте пізніше.",
	"⏸️ Бот на паузі. Скоро повернемося.",
	"🔧 Технічні роботи. Бот запрацює найближчим часом.",
	"🔄 Оновлюємо бота. Зачекайте, будь ласка.",
	"🚧 Бот тимчасово не працює через оновлення графіків.",
}

type Service struct {
	store            Store
	log              *slog.Logger
	scheduleInterval time.Duration
	powerInterval    time.Duration
}

// New - scheduleDefault/powerDefault используются, пока админ не задал свои значения
func New(store Store, log *slog.Logger, scheduleDefault, powerDefault time.Duration) *Service {
	return &Service{
		store:            store,
		log:              log,
		scheduleInterval: scheduleDefault,
		powerInterval:    powerDefault,
	}
}

// ScheduleInterval - интервал проверки графиков; при ошибке чтения - значение по умолчанию
func (s *Service) ScheduleInterval(ctx context.Context) time.Duration {
	return s.interval(ctx, KeyScheduleInterval, s.scheduleInterval)
}

func (s *Service) PowerInterval(ctx context.Context) time.Duration {
	return s.interval(ctx, KeyPowerInterval, s.powerInterval)
}

func (s *Service) SetScheduleInterval(ctx context.Context, d time.Duration) error {
	return s.setInterval(ctx, KeyScheduleInterval, d)
}

func (s *Service) SetPowerInterval(ctx context.Context, d time.Duration) error {
	return s.setInterval(ctx, KeyPowerInterval, d)
}

// интервалы хранятся в секундах
func (s *Service) interval(ctx context.Context, key string, def time.Duration) time.Duration {
	raw, err := s.store.GetSetting(ctx, key, "")
	if err != nil {
		s.log.Warn("settings.get failed", slog.String("key", key), slog.String("err", err.Error()))
		return def
	}
	if raw == "" {
		return def
	}
	sec, err := strconv.Atoi(raw)
	if err != nil || sec <= 0 {
		s.log.Warn("settings.bad interval", slog.String("key", key), slog.String("value", raw))
		return def
	}
	return time.Duration(sec) * time.Second
}

func (s *Service) setInterval(ctx context.Context, key string, d time.Duration) error {
	if d < time.Second {
		return fmt.Errorf("%s=%s: %w", key, d, derrors.ErrInvalidInterval)
	}
	if err := s.store.SetSetting(ctx, key, strconv.Itoa(int(d/time.Second))); err != nil {
		s.log.Error("settings.set failed", slog.String("key", key), slog.String("err", err.Error()))
		return fmt.Errorf("%w: %w", derrors.ErrInternal, err)
	}
	s.log.Info("settings.interval updated", slog.String("key", key), slog.Duration("value", d))
	return nil
}

// IsPaused - режим паузы; при ошибке чтения считаем, что пауза выключена
func (s *Service) IsPaused(ctx context.Context) bool {
	raw, err := s.store.GetSetting(ctx, KeyPaused, "0")
	if err != nil {
		s.log.Warn("settings.get failed", slog.String("key", KeyPaused), slog.String("err", err.Error()))
		return false
	}
	return raw == "1"
}

func (s *Service) SetPaused(ctx context.Context, paused bool) error {
	v := "0"
	if paused {
		v = "1"
	}
	if err := s.store.SetSetting(ctx, KeyPaused, v); err != nil {
		s.log.Error("settings.set failed", slog.String("key", KeyPaused), slog.String("err", err.Error()))
		return fmt.Errorf("%w: %w", derrors.ErrInternal, err)
	}
	s.log.Info("settings.pause toggled", slog.Bool("paused", paused))
	return nil
}

// TogglePaused - переключает паузу и возвращает новое состояние
func (s *Service) TogglePaused(ctx context.Context) (bool, error) {
	next := !s.IsPaused(ctx)
	if err := s.SetPaused(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}

func (s *Service) PauseMessage(ctx context.Context) string {
	raw, err := s.store.GetSetting(ctx, KeyPauseMessage, DefaultPauseMessage)
	if err != nil || raw == "" {
		return DefaultPauseMessage
	}
	return raw
}

func (s *Service) SetPauseMessage(ctx context.Context, msg string) error {
	if msg == "" {
		msg = DefaultPauseMessage
	}
	if err := s.store.SetSetting(ctx, KeyPauseMessage, msg); err != nil {
		s.log.Error("settings.set failed", slog.String("key", KeyPauseMessage), slog.String("err", err.Error()))
		return fmt.Errorf("%w: %w", derrors.ErrInternal, err)
	}
	return nil
}
