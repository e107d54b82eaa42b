package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/ports/errcode"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_http.go -package=mocks

// UserReader — чтение пользователей и статистики
type UserReader interface {
	GetUserByTelegramID(ctx context.Context, telegramID string) (domain.User, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// SettingsReader — глобальные настройки бота
type SettingsReader interface {
	ScheduleInterval(ctx context.Context) time.Duration
	PowerInterval(ctx context.Context) time.Duration
	IsPaused(ctx context.Context) bool
}

// Pinger — проверка доступности БД
type Pinger interface {
	Ping(ctx context.Context) error
}

// User — DTO пользователя без служебных полей
type User struct {
	TelegramID         string     `json:"telegram_id"`
	Username           string     `json:"username,omitempty"`
	Region             string     `json:"region"`
	Queue              string     `json:"queue"`
	ChannelID          *int64     `json:"channel_id,omitempty"`
	NotifyTarget       string     `json:"notify_target"`
	AlertBeforeMinutes int        `json:"alert_before_minutes"`
	HasRouterIP        bool       `json:"has_router_ip"`
	PowerState         string     `json:"power_state,omitempty"`
	PowerChangedAt     *time.Time `json:"power_changed_at,omitempty"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
}

func makeUser(u domain.User) User {
	out := User{
		TelegramID:         u.TelegramID,
		Username:           u.Username,
		Region:             u.Region,
		Queue:              u.Queue,
		NotifyTarget:       string(u.NotifyTarget),
		AlertBeforeMinutes: u.AlertBeforeMinutes,
		// адрес роутера наружу не отдаём, только факт наличия
		HasRouterIP:        u.RouterIP != "",
		PowerState:         string(u.PowerState),
		PowerChangedAt:     u.PowerChangedAt,
		IsActive:           u.IsActive,
		CreatedAt:          u.CreatedAt,
	}
	if u.HasChannel() {
		id := u.ChannelID
		out.ChannelID = &id
	}
	return out
}

// Settings — DTO глобальных настроек
type Settings struct {
	ScheduleIntervalSec int  `json:"schedule_interval_sec"`
	PowerIntervalSec    int  `json:"power_interval_sec"`
	Paused              bool `json:"paused"`
}

// Handler — HTTP-handler служебного API
type Handler struct {
	logger   *slog.Logger
	users    UserReader
	settings SettingsReader
	db       Pinger
	timeout  time.Duration
}

func NewHandler(logger *slog.Logger, users UserReader, settings SettingsReader, db Pinger, timeout time.Duration) *Handler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if users == nil || settings == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &Handler{
		logger:   logger,
		users:    users,
		settings: settings,
		db:       db,
		timeout:  timeout,
	}
}

func (h *Handler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/healthz", h.Health)
	r.GET("/readyz", h.Ready)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/settings", h.GetSettings)
	r.GET("/api/users/:telegram_id", h.GetUser)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Ready — готовность: БД отвечает на ping
func (h *Handler) Ready(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", slog.String("err", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status": "unavailable",
			"error":  "database_unreachable",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.users.Stats(ctx)
	if err != nil {
		return h.fail(c, "GetStats", err)
	}
	if stats.ByRegion == nil {
		stats.ByRegion = map[string]int{}
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetSettings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	return c.JSON(http.StatusOK, Settings{
		ScheduleIntervalSec: int(h.settings.ScheduleInterval(ctx) / time.Second),
		PowerIntervalSec:    int(h.settings.PowerInterval(ctx) / time.Second),
		Paused:              h.settings.IsPaused(ctx),
	})
}

func (h *Handler) GetUser(c echo.Context) error {
	id := strings.TrimSpace(c.Param("telegram_id"))
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid_telegram_id",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.users.GetUserByTelegramID(ctx, id)
	if err != nil {
		return h.fail(c, "GetUser", err, "telegram_id", id)
	}
	return c.JSON(http.StatusOK, makeUser(u))
}

// fail — ответ по коду ошибки; extra - пары ключ/значение для тела ответа
func (h *Handler) fail(c echo.Context, op string, err error, extra ...string) error {
	body := echo.Map{}
	for i := 0; i+1 < len(extra); i += 2 {
		body[extra[i]] = extra[i+1]
	}

	switch FromServiceError(err) {
	case errcode.NotFoundUser:
		body["error"] = "user_not_found"
		return c.JSON(http.StatusNotFound, body)
	case errcode.NotFoundSchedule:
		body["error"] = "schedule_not_found"
		return c.JSON(http.StatusNotFound, body)
	case errcode.BadRequest, errcode.InvalidIP:
		body["error"] = "bad_request"
		return c.JSON(http.StatusBadRequest, body)
	case errcode.ChannelOccupied:
		body["error"] = "channel_occupied"
		return c.JSON(http.StatusConflict, body)
	default:
		h.logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal_server_error",
		})
	}
}

// FromServiceError — код ошибки для HTTP-ответа
func FromServiceError(err error) errcode.Code {
	return errcode.FromError(err)
}
