package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	botpkg "github.com/Ivan200424/Voltyk/internal/bot"
	"github.com/Ivan200424/Voltyk/internal/bot/adapter"
	"github.com/Ivan200424/Voltyk/internal/access"
	"github.com/Ivan200424/Voltyk/internal/config"
	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/infra/db"
	"github.com/Ivan200424/Voltyk/internal/infra/schedule_client"
	repopg "github.com/Ivan200424/Voltyk/internal/repository/postgres"
	"github.com/Ivan200424/Voltyk/internal/scheduler"
	"github.com/Ivan200424/Voltyk/internal/service/notify"
	powersvc "github.com/Ivan200424/Voltyk/internal/service/power"
	schedulesvc "github.com/Ivan200424/Voltyk/internal/service/schedule"
	settingssvc "github.com/Ivan200424/Voltyk/internal/service/settings"
	"github.com/Ivan200424/Voltyk/internal/transport/httptransport"
	"github.com/Ivan200424/Voltyk/internal/wizard"
	"github.com/Ivan200424/Voltyk/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg *config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	users    *repopg.UserRepo
	settings *settingssvc.Service
	schedule *schedulesvc.Service
	power    *powersvc.Service
	wizard   *wizard.Machine

	jobs   []*scheduler.Scheduler
	jobsWG sync.WaitGroup

	bot      *botpkg.Bot
	stopOnce sync.Once
}

// NewApp читает конфигурацию, подключается к БД и собирает все компоненты
func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(&cfg.Logger)

	pool, err := db.NewPool(&cfg.Postgres)
	if err != nil {
		log.Error("postgres init failed", slog.String("err", err.Error()))
		return nil, err
	}
	if cfg.Postgres.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := db.Migrate(ctx, pool, log)
		cancel()
		if err != nil {
			pool.Close()
			log.Error("migrations failed", slog.String("err", err.Error()))
			return nil, err
		}
	}

	app, err := build(cfg, log, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return app, nil
}

func build(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: pool}

	app.users = repopg.NewUserRepository(pool)
	catalog := domain.DefaultCatalog()
	policy := access.NewPolicy(cfg.Telegram.AdminIDs, cfg.Telegram.OwnerID)

	app.settings = settingssvc.New(repopg.NewSettingsRepository(pool), log,
		cfg.Scheduler.ScheduleInterval, cfg.Scheduler.PowerInterval)

	loc, err := cfg.ScheduleSource.Location()
	if err != nil {
		return nil, fmt.Errorf("schedule timezone: %w", err)
	}
	source := schedule_client.NewClient(cfg.ScheduleSource, loc)

	botCfg := botpkg.Config{
		Token:           cfg.Telegram.Token,
		LongPollTimeout: cfg.Telegram.PollTimeout,
		MenuDelay:       cfg.Telegram.MenuDelay,
		RequestTimeout:  cfg.Telegram.RequestTimeout,
	}
	api, err := botpkg.NewClient(botCfg)
	if err != nil {
		log.Error("telegram init failed", slog.String("err", err.Error()))
		return nil, err
	}

	notifier := notify.New(adapter.NewMessenger(api), log)
	app.schedule = schedulesvc.NewService(app.users, source, notifier, app.settings,
		catalog, schedulesvc.NewRealClock(loc), log)
	app.power = powersvc.NewService(app.users,
		powersvc.NewTCPProber(cfg.Power.ProbePort, cfg.Power.DialTimeout),
		notifier, app.settings, cfg.Power.Confirmations, cfg.Power.Workers, log)

	app.wizard = wizard.NewMachine(wizard.NewStore(), app.users, catalog, log)

	app.bot = botpkg.New(api, botCfg, botpkg.Deps{
		Users:    app.users,
		Settings: app.settings,
		Schedule: app.schedule,
		Power:    app.power,
		Wizard:   app.wizard,
		Catalog:  catalog,
		Policy:   policy,
	}, log)

	if cfg.Scheduler.ScheduleEnabled {
		app.jobs = append(app.jobs,
			scheduler.NewScheduler("schedule", app.schedule.CheckAll, app.settings.ScheduleInterval, log))
	}
	if cfg.Scheduler.PowerEnabled {
		app.jobs = append(app.jobs,
			scheduler.NewScheduler("power", app.power.CheckAll, app.settings.PowerInterval, log))
	}
	if ttl := cfg.Wizard.SessionTTL; ttl > 0 {
		sweep := func(context.Context) (int, error) { return app.wizard.Sweep(ttl), nil }
		app.jobs = append(app.jobs,
			scheduler.NewScheduler("wizard_sweep", sweep, scheduler.Fixed(cfg.Wizard.SweepInterval), log))
	}

	if cfg.Server.Enabled {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httptransport.NewHandler(log, app.users, app.settings, pool, cfg.Server.ReadTimeout).RegisterRoutes(e)
		app.e = e
		app.serv = &http.Server{
			Addr:         cfg.Server.Addr,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			Handler:      e,
		}
	}

	log.Info("app initialized",
		slog.Int("background_jobs", len(app.jobs)),
		slog.Bool("http_enabled", cfg.Server.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
		slog.Int("admins", len(cfg.Telegram.AdminIDs)),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	for _, job := range a.jobs {
		a.jobsWG.Add(1)
		go func() {
			defer a.jobsWG.Done()
			job.Start(ctx)
		}()
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(ctx)
	}

	if a.e != nil {
		a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
		go func() {
			if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("http server error", slog.String("err", err.Error()))
			}
		}()
	}
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("err", err.Error()))
			errs = append(errs, err)
		}
	}

	a.stopOnce.Do(func() {
		if a.bot != nil {
			a.bot.Stop()
		}
		// фоновые задачи ещё могут писать в БД
		if err := a.waitJobs(shCtx); err != nil {
			a.log.Error("background jobs did not stop in time", slog.String("err", err.Error()))
			errs = append(errs, err)
		}
		if a.db != nil {
			a.db.Close()
		}
	})

	a.log.Info("application stopped")
	return errors.Join(errs...)
}

// waitJobs - ожидание остановки планировщиков в пределах ctx
func (a *App) waitJobs(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.jobsWG.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
