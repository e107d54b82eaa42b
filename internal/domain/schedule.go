package domain

import "time"

// Period - одно плановое отключение
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) Duration() time.Duration { return p.End.Sub(p.Start) }

// DaySchedule - отключения одной очереди за день
type DaySchedule struct {
	Date    time.Time
	Periods []Period
}

// TotalOff - суммарная длительность отключений за день
func (d DaySchedule) TotalOff() time.Duration {
	var total time.Duration
	for _, p := range d.Periods {
		total += p.Duration()
	}
	return total
}

// RegionSchedule - графики всех очередей региона, как их отдаёт источник
type RegionSchedule struct {
	Region    string
	UpdatedAt time.Time
	Days      []RegionDay
}

// RegionDay - день с отключениями по очередям
type RegionDay struct {
	Date   time.Time
	Queues map[string][]Period
}

// QueueDays - выборка дней для конкретной очереди
func (s RegionSchedule) QueueDays(queue string) []DaySchedule {
	out := make([]DaySchedule, 0, len(s.Days))
	for _, d := range s.Days {
		out = append(out, DaySchedule{Date: d.Date, Periods: d.Queues[queue]})
	}
	return out
}
