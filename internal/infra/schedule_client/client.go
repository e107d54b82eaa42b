package schedule_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/Ivan200424/Voltyk/internal/config"
	"github.com/Ivan200424/Voltyk/internal/domain"
	derrors "github.com/Ivan200424/Voltyk/internal/errors"
	"github.com/Ivan200424/Voltyk/internal/metrics"
)

type Client struct {
	cfg        config.ScheduleSourceConfig
	loc        *time.Location
	httpClient *http.Client
}

// regionResponse - структура ответа источника графиков
type regionResponse struct {
	Region    string        `json:"region"`
	UpdatedAt string        `json:"updated_at"`
	Days      []dayResponse `json:"days"`
}

type dayResponse struct {
	Date   string                      `json:"date"`
	Queues map[string][]periodResponse `json:"queues"`
}

type periodResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewClient - клиент источника графиков; время интерпретируется в loc
func NewClient(cfg config.ScheduleSourceConfig, loc *time.Location) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		cfg: cfg,
		loc: loc,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchRegion - графики всех очередей региона
func (c *Client) FetchRegion(ctx context.Context, region string) (domain.RegionSchedule, error) {
	start := time.Now()
	rs, err := c.fetchRegion(ctx, region)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.ScheduleFetchDuration.WithLabelValues(region, status).Observe(time.Since(start).Seconds())
	return rs, err
}

func (c *Client) fetchRegion(ctx context.Context, region string) (domain.RegionSchedule, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return domain.RegionSchedule{}, fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(region + ".json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.RegionSchedule{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "voltyk-bot/1.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RegionSchedule{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.RegionSchedule{}, fmt.Errorf("region %s: %w", region, derrors.ErrScheduleNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.RegionSchedule{}, fmt.Errorf("request failed: %s", resp.Status)
	}

	var data regionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.RegionSchedule{}, fmt.Errorf("decoding response: %w", err)
	}
	return c.toDomain(region, data)
}

func (c *Client) toDomain(region string, data regionResponse) (domain.RegionSchedule, error) {
	rs := domain.RegionSchedule{Region: region, Days: make([]domain.RegionDay, 0, len(data.Days))}
	if data.Region != "" {
		rs.Region = data.Region
	}
	if data.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, data.UpdatedAt); err == nil {
			rs.UpdatedAt = t
		}
	}

	for _, d := range data.Days {
		date, err := time.ParseInLocation("2006-01-02", d.Date, c.loc)
		if err != nil {
			return domain.RegionSchedule{}, fmt.Errorf("decoding day %q: %w", d.Date, err)
		}
		day := domain.RegionDay{Date: date, Queues: make(map[string][]domain.Period, len(d.Queues))}
		for queue, periods := range d.Queues {
			out := make([]domain.Period, 0, len(periods))
			for _, p := range periods {
				from, err := clockOn(date, p.From)
				if err != nil {
					return domain.RegionSchedule{}, fmt.Errorf("queue %s: %w", queue, err)
				}
				to, err := clockOn(date, p.To)
				if err != nil {
					return domain.RegionSchedule{}, fmt.Errorf("queue %s: %w", queue, err)
				}
				if !to.After(from) {
					continue
				}
				out = append(out, domain.Period{Start: from, End: to})
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
			day.Queues[queue] = out
		}
		rs.Days = append(rs.Days, day)
	}
	sort.Slice(rs.Days, func(i, j int) bool { return rs.Days[i].Date.Before(rs.Days[j].Date) })
	return rs, nil
}

// clockOn - "HH:MM" в рамках дня; "24:00" - конец дня
func clockOn(date time.Time, hhmm string) (time.Time, error) {
	if hhmm == "24:00" {
		return date.AddDate(0, 0, 1), nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
