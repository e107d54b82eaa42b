package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	domainerrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, telegram_id, username, region, queue, channel_id, notify_target,
	alert_before_minutes, router_ip, schedule_caption, period_format, power_off_text,
	power_on_text, delete_old_message, last_schedule_hash, last_schedule_message_id,
	power_state, power_changed_at, is_active, created_at, updated_at`

const uniqueViolation = "23505"

type UserRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository - репозиторий пользователей на основе пула соединений
func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		channelID *int64
		target    string
		state     string
	)
	err := row.Scan(
		&u.ID, &u.TelegramID, &u.Username, &u.Region, &u.Queue, &channelID, &target,
		&u.AlertBeforeMinutes, &u.RouterIP, &u.Format.ScheduleCaption, &u.Format.PeriodFormat,
		&u.Format.PowerOffText, &u.Format.PowerOnText, &u.Format.DeleteOldMessage,
		&u.LastScheduleHash, &u.LastScheduleMessageID, &state, &u.PowerChangedAt,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, repository.ErrNotFound
		}
		return domain.User{}, err
	}
	if channelID != nil {
		u.ChannelID = *channelID
	}
	u.NotifyTarget = domain.NotifyTarget(target)
	u.PowerState = domain.PowerState(state)
	return u, nil
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser - создание пользователя; повторный вызов для того же telegram_id обновляет запись
func (r *UserRepo) CreateUser(ctx context.Context, telegramID, username, region, queue string) (domain.User, error) {
	query := `
	INSERT INTO users (telegram_id, username, region, queue)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (telegram_id)
	DO UPDATE SET username = EXCLUDED.username,
	              region = EXCLUDED.region,
	              queue = EXCLUDED.queue,
	              is_active = TRUE,
	              updated_at = NOW()
	RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query, telegramID, username, region, queue))
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UpdateUserRegionQueue - смена региона и очереди; сбрасывает хеш графика
func (r *UserRepo) UpdateUserRegionQueue(ctx context.Context, telegramID, region, queue string) (domain.User, error) {
	query := `
	UPDATE users
	SET region = $2, queue = $3, last_schedule_hash = '', updated_at = NOW()
	WHERE telegram_id = $1
	RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query, telegramID, region, queue))
	if err != nil {
		return domain.User{}, fmt.Errorf("update user region: %w", err)
	}
	return u, nil
}

// GetUserByTelegramID - поиск пользователя по telegram id
func (r *UserRepo) GetUserByTelegramID(ctx context.Context, telegramID string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, telegramID))
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByChannelID - владелец канала
func (r *UserRepo) GetUserByChannelID(ctx context.Context, channelID int64) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE channel_id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, channelID))
	if err != nil {
		return domain.User{}, fmt.Errorf("get user by channel: %w", err)
	}
	return u, nil
}

// ListActive - все активные пользователи
func (r *UserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active ORDER BY id`
	users, err := r.queryUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	return users, nil
}

// ListWithRouterIP - активные пользователи с настроенным IP роутера
func (r *UserRepo) ListWithRouterIP(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active AND router_ip <> '' ORDER BY id`
	users, err := r.queryUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users with router ip: %w", err)
	}
	return users, nil
}

func (r *UserRepo) execOne(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", op, domainerrors.ErrChannelOccupied)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}

// UpdateChannel - привязка канала; channelID == 0 отвязывает
func (r *UserRepo) UpdateChannel(ctx context.Context, telegramID string, channelID int64) error {
	var value *int64
	if channelID != 0 {
		value = &channelID
	}
	query := `UPDATE users SET channel_id = $2, last_schedule_message_id = 0, updated_at = NOW() WHERE telegram_id = $1`
	return r.execOne(ctx, "update channel", query, telegramID, value)
}

// UpdateNotifyTarget - куда слать уведомления
func (r *UserRepo) UpdateNotifyTarget(ctx context.Context, telegramID string, target domain.NotifyTarget) error {
	query := `UPDATE users SET notify_target = $2, updated_at = NOW() WHERE telegram_id = $1`
	return r.execOne(ctx, "update notify target", query, telegramID, string(target))
}

// UpdateAlertBefore - за сколько минут предупреждать; 0 выключает
func (r *UserRepo) UpdateAlertBefore(ctx context.Context, telegramID string, minutes int) error {
	query := `UPDATE users SET alert_before_minutes = $2, updated_at = NOW() WHERE telegram_id = $1`
	return r.execOne(ctx, "update alert before", query, telegramID, minutes)
}

// UpdateRouterIP - IP роутера для мониторинга; пустая строка выключает мониторинг
func (r *UserRepo) UpdateRouterIP(ctx context.Context, telegramID, ip string) error {
	query := `
	UPDATE users
	SET router_ip = $2, power_state = '', power_changed_at = NULL, updated_at = NOW()
	WHERE telegram_id = $1`
	return r.execOne(ctx, "update router ip", query, telegramID, ip)
}

// UpdateFormatSettings - сохранение шаблонов публикаций
func (r *UserRepo) UpdateFormatSettings(ctx context.Context, telegramID string, f domain.FormatSettings) error {
	query := `
	UPDATE users
	SET schedule_caption = $2, period_format = $3, power_off_text = $4,
	    power_on_text = $5, delete_old_message = $6, updated_at = NOW()
	WHERE telegram_id = $1`
	return r.execOne(ctx, "update format settings", query, telegramID,
		f.ScheduleCaption, f.PeriodFormat, f.PowerOffText, f.PowerOnText, f.DeleteOldMessage)
}

// GetFormatSettings - шаблоны публикаций пользователя
func (r *UserRepo) GetFormatSettings(ctx context.Context, telegramID string) (domain.FormatSettings, error) {
	query := `
	SELECT schedule_caption, period_format, power_off_text, power_on_text, delete_old_message
	FROM users WHERE telegram_id = $1`
	var f domain.FormatSettings
	err := r.db.QueryRow(ctx, query, telegramID).
		Scan(&f.ScheduleCaption, &f.PeriodFormat, &f.PowerOffText, &f.PowerOnText, &f.DeleteOldMessage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FormatSettings{}, fmt.Errorf("get format settings: %w", repository.ErrNotFound)
		}
		return domain.FormatSettings{}, fmt.Errorf("get format settings: %w", err)
	}
	return f, nil
}

// UpdateLastSchedule - хеш опубликованного графика и id сообщения в канале
func (r *UserRepo) UpdateLastSchedule(ctx context.Context, telegramID, hash string, messageID int) error {
	query := `
	UPDATE users
	SET last_schedule_hash = $2, last_schedule_message_id = $3, updated_at = NOW()
	WHERE telegram_id = $1`
	return r.execOne(ctx, "update last schedule", query, telegramID, hash, messageID)
}

// UpdatePowerState - фиксирует смену состояния электричества
func (r *UserRepo) UpdatePowerState(ctx context.Context, telegramID string, state domain.PowerState, at time.Time) error {
	query := `
	UPDATE users
	SET power_state = $2, power_changed_at = $3, updated_at = NOW()
	WHERE telegram_id = $1`
	return r.execOne(ctx, "update power state", query, telegramID, string(state), at)
}

// DeleteUser - удаление аккаунта со всеми настройками
func (r *UserRepo) DeleteUser(ctx context.Context, telegramID string) error {
	query := `DELETE FROM users WHERE telegram_id = $1`
	return r.execOne(ctx, "delete user", query, telegramID)
}

// Stats - агрегаты для админ-панели
func (r *UserRepo) Stats(ctx context.Context) (domain.Stats, error) {
	query := `
	SELECT COUNT(*),
	       COUNT(*) FILTER (WHERE is_active),
	       COUNT(*) FILTER (WHERE channel_id IS NOT NULL),
	       COUNT(*) FILTER (WHERE router_ip <> '')
	FROM users`
	st := domain.Stats{ByRegion: map[string]int{}}
	if err := r.db.QueryRow(ctx, query).Scan(&st.Total, &st.Active, &st.WithChannel, &st.WithIP); err != nil {
		return domain.Stats{}, fmt.Errorf("users stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT region, COUNT(*) FROM users WHERE is_active GROUP BY region`)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("users by region: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			region string
			n      int
		)
		if err := rows.Scan(&region, &n); err != nil {
			return domain.Stats{}, fmt.Errorf("users by region: %w", err)
		}
		st.ByRegion[region] = n
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, fmt.Errorf("users by region: %w", err)
	}
	return st, nil
}
