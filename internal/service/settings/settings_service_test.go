package settings

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	settingsmocks "github.com/Ivan200424/Voltyk/internal/service/settings/mocks"
	"github.com/golang/mock/gomock"
)

func setupSvc(t *testing.T) (context.Context, *settingsmocks.MockStore, *Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := settingsmocks.NewMockStore(ctrl)
	svc := New(store, slog.Default(), time.Minute, 2*time.Second)
	return context.Background(), store, svc
}

func TestScheduleInterval_DefaultWhenUnset(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	store.EXPECT().GetSetting(gomock.Any(), KeyScheduleInterval, "").Return("", nil)

	if got := svc.ScheduleInterval(ctx); got != time.Minute {
		t.Fatalf("expected default 1m, got %s", got)
	}
}

func TestScheduleInterval_Stored(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	store.EXPECT().GetSetting(gomock.Any(), KeyScheduleInterval, "").Return("300", nil)

	if got := svc.ScheduleInterval(ctx); got != 5*time.Minute {
		t.Fatalf("expected 5m, got %s", got)
	}
}

func TestPowerInterval_FallbacksOnErrorAndGarbage(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	gomock.InOrder(
		store.EXPECT().GetSetting(gomock.Any(), KeyPowerInterval, "").Return("", errors.New("db down")),
		store.EXPECT().GetSetting(gomock.Any(), KeyPowerInterval, "").Return("abc", nil),
		store.EXPECT().GetSetting(gomock.Any(), KeyPowerInterval, "").Return("-5", nil),
	)

	for i := 0; i < 3; i++ {
		if got := svc.PowerInterval(ctx); got != 2*time.Second {
			t.Fatalf("expected default 2s, got %s", got)
		}
	}
}

func TestSetScheduleInterval(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	store.EXPECT().SetSetting(gomock.Any(), KeyScheduleInterval, "600").Return(nil)

	if err := svc.SetScheduleInterval(ctx, 10*time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SetScheduleInterval(ctx, 0); !errors.Is(err, derrors.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestSetPowerInterval_StoreError(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	store.EXPECT().SetSetting(gomock.Any(), KeyPowerInterval, "10").Return(errors.New("db down"))

	if err := svc.SetPowerInterval(ctx, 10*time.Second); !errors.Is(err, derrors.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestTogglePaused(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	gomock.InOrder(
		store.EXPECT().GetSetting(gomock.Any(), KeyPaused, "0").Return("0", nil),
		store.EXPECT().SetSetting(gomock.Any(), KeyPaused, "1").Return(nil),
	)

	paused, err := svc.TogglePaused(ctx)
	if err != nil || !paused {
		t.Fatalf("expected paused=true, got %v err=%v", paused, err)
	}
}

func TestIsPaused_ErrorMeansNotPaused(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	store.EXPECT().GetSetting(gomock.Any(), KeyPaused, "0").Return("", errors.New("db down"))

	if svc.IsPaused(ctx) {
		t.Fatalf("expected not paused on read error")
	}
}

func TestPauseMessage(t *testing.T) {
	ctx, store, svc := setupSvc(t)
	gomock.InOrder(
		store.EXPECT().GetSetting(gomock.Any(), KeyPauseMessage, DefaultPauseMessage).Return("custom", nil),
		store.EXPECT().GetSetting(gomock.Any(), KeyPauseMessage, DefaultPauseMessage).Return("", errors.New("db down")),
		store.EXPECT().SetSetting(gomock.Any(), KeyPauseMessage, DefaultPauseMessage).Return(nil),
	)

	if got := svc.PauseMessage(ctx); got != "custom" {
		t.Fatalf("expected custom message, got %q", got)
	}
	if got := svc.PauseMessage(ctx); got != DefaultPauseMessage {
		t.Fatalf("expected default message, got %q", got)
	}
	if err := svc.SetPauseMessage(ctx, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
