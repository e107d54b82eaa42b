package httptransport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/domain"
	"github.com/Ivan200424/Voltyk/internal/repository"
	"github.com/Ivan200424/Voltyk/internal/transport/httptransport/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e        *echo.Echo
	users    *mocks.MockUserReader
	settings *mocks.MockSettingsReader
	db       *mocks.MockPinger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := &testServer{
		e:        echo.New(),
		users:    mocks.NewMockUserReader(ctrl),
		settings: mocks.NewMockSettingsReader(ctrl),
		db:       mocks.NewMockPinger(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewHandler(logger, s.users, s.settings, s.db, time.Second).RegisterRoutes(s.e)
	return s
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestReady(t *testing.T) {
	s := newTestServer(t)
	s.db.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.Equal(t, http.StatusOK, s.get("/readyz").Code)

	s.db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rec := s.get("/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "database_unreachable", decode(t, rec)["error"])
}

func TestGetStats(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().Stats(gomock.Any()).Return(domain.Stats{Total: 3, Active: 2, ByRegion: map[string]int{"kyiv": 3}}, nil)

	rec := s.get("/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.ByRegion["kyiv"])
}

func TestGetStats_Error(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().Stats(gomock.Any()).Return(domain.Stats{}, errors.New("db down"))

	rec := s.get("/api/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_server_error", decode(t, rec)["error"])
}

func TestGetSettings(t *testing.T) {
	s := newTestServer(t)
	s.settings.EXPECT().ScheduleInterval(gomock.Any()).Return(5 * time.Minute)
	s.settings.EXPECT().PowerInterval(gomock.Any()).Return(2 * time.Second)
	s.settings.EXPECT().IsPaused(gomock.Any()).Return(true)

	rec := s.get("/api/settings")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 300, body["schedule_interval_sec"])
	assert.EqualValues(t, 2, body["power_interval_sec"])
	assert.Equal(t, true, body["paused"])
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().GetUserByTelegramID(gomock.Any(), "42").Return(domain.User{
		TelegramID:   "42",
		Region:       "kyiv",
		Queue:        "3.1",
		ChannelID:    -1001,
		NotifyTarget: domain.NotifyBoth,
		RouterIP:     "93.175.1.2",
		IsActive:     true,
	}, nil)

	rec := s.get("/api/users/42")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "kyiv", body["region"])
	assert.EqualValues(t, -1001, body["channel_id"])
	assert.Equal(t, true, body["has_router_ip"])
	assert.NotContains(t, rec.Body.String(), "93.175.1.2")
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().GetUserByTelegramID(gomock.Any(), "7").Return(domain.User{}, repository.ErrNotFound)

	rec := s.get("/api/users/7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "user_not_found", body["error"])
	assert.Equal(t, "7", body["telegram_id"])
}

func TestGetUser_BadID(t *testing.T) {
	s := newTestServer(t)
	rec := s.get("/api/users/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_telegram_id", decode(t, rec)["error"])
}

func TestMetricsExposed(t *testing.T) {
	s := newTestServer(t)
	rec := s.get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
