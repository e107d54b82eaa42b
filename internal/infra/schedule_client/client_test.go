package schedule_client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ivan200424/Voltyk/internal/config"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kyivJSON = `{
  "region": "kyiv",
  "updated_at": "2025-11-03T08:00:00Z",
  "days": [
    {"date": "2025-11-04", "queues": {"3.1": [{"from": "20:00", "to": "24:00"}]}},
    {"date": "2025-11-03", "queues": {
      "3.1": [{"from": "14:00", "to": "17:30"}, {"from": "08:00", "to": "10:00"}],
      "1.1": []
    }}
  ]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	return NewClient(config.ScheduleSourceConfig{BaseURL: srv.URL + "/data", Timeout: time.Second}, loc)
}

func TestFetchRegion_ParsesDaysAndPeriods(t *testing.T) {
	var gotPath, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(kyivJSON))
	})

	rs, err := c.FetchRegion(context.Background(), "kyiv")
	require.NoError(t, err)

	assert.Equal(t, "/data/kyiv.json", gotPath)
	assert.Equal(t, "voltyk-bot/1.0", gotUA)
	assert.Equal(t, "kyiv", rs.Region)
	require.Len(t, rs.Days, 2)

	// дни отсортированы по дате
	first := rs.Days[0]
	assert.Equal(t, 3, first.Date.Day())
	periods := first.Queues["3.1"]
	require.Len(t, periods, 2)
	assert.Equal(t, 8, periods[0].Start.Hour())
	assert.Equal(t, 14, periods[1].Start.Hour())
	assert.Equal(t, 3*time.Hour+30*time.Minute, periods[1].Duration())
	assert.Empty(t, first.Queues["1.1"])

	// 24:00 - полночь следующего дня
	late := rs.Days[1].Queues["3.1"][0]
	assert.Equal(t, 4*time.Hour, late.Duration())
	assert.Equal(t, 5, late.End.Day())
}

func TestFetchRegion_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchRegion(context.Background(), "atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrScheduleNotFound))
}

func TestFetchRegion_BadStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.FetchRegion(context.Background(), "kyiv")
	require.Error(t, err)

	c = newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"days":[{"date":"2025-11-03","queues":{"1.1":[{"from":"9am","to":"10:00"}]}}]}`))
	})
	_, err = c.FetchRegion(context.Background(), "kyiv")
	require.Error(t, err)
}
