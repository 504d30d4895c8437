package application

import (
	"context"
	"fmt"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

type StatsService struct {
	sessions ports.SessionLog
	clock    ports.Clock
}

func NewStatsService(sessions ports.SessionLog, clock ports.Clock) *StatsService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &StatsService{sessions: sessions, clock: clock}
}

// Stats aggregates the session log. Weeks start on Monday in the clock's
// location.
func (s *StatsService) Stats(ctx context.Context) (domain.SessionStats, error) {
	records, err := s.sessions.List(ctx)
	if err != nil {
		return domain.SessionStats{}, fmt.Errorf("list sessions: %w", err)
	}

	now := s.clock.Now()
	today := startOfDay(now)
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	var stats domain.SessionStats
	for _, record := range records {
		stats.TotalSessions++
		stats.TotalMinutes += record.DurationMinutes
		if record.Completed {
			stats.CompletedCount++
		}
		if record.Type == domain.SessionWork {
			stats.WorkSessions++
		} else {
			stats.BreakSessions++
		}

		day := startOfDay(record.Timestamp.In(now.Location()))
		if day.Equal(today) {
			stats.TodaySessions++
		}
		if !day.Before(weekStart) {
			stats.ThisWeekSessions++
		}
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
