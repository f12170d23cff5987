package service

import (
	"context"
	"time"

	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/storage"
)

const DefaultWindowDays = 7

func windowDays(days int) int {
	if days <= 0 || days > 365 {
		return DefaultWindowDays
	}
	return days
}

func CalculateSleepStats(ctx context.Context, repo storage.SleepRepository, user *internal.User, now time.Time, days int) (metrics.SleepSummary, error) {
	entries, err := repo.ListSleepEntries(ctx, user.ID)
	if err != nil {
		return metrics.SleepSummary{}, err
	}
	days = windowDays(days)
	return metrics.SummarizeSleep(metrics.SleepInWindow(entries, now, days), days), nil
}

func CalculateHydration(ctx context.Context, repo storage.WaterRepository, user *internal.User, now time.Time, goalML float64) (metrics.HydrationSummary, error) {
	entries, err := repo.ListWaterEntries(ctx, user.ID)
	if err != nil {
		return metrics.HydrationSummary{}, err
	}
	return metrics.SummarizeHydration(entries, now, goalML), nil
}

func CalculateMood(ctx context.Context, repo storage.MoodRepository, user *internal.User, now time.Time, days int) (metrics.MoodSummary, error) {
	entries, err := repo.ListMoodEntries(ctx, user.ID)
	if err != nil {
		return metrics.MoodSummary{}, err
	}
	return metrics.SummarizeMood(metrics.MoodInWindow(entries, now, windowDays(days))), nil
}

// LoadDashboardInput fetches everything the dashboard derives from.
func LoadDashboardInput(ctx context.Context, store storage.Store, user *internal.User) (metrics.DashboardInput, error) {
	var (
		in  metrics.DashboardInput
		err error
	)
	if in.Health, err = store.ListHealthEntries(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Exercises, err = store.ListExercises(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Sleep, err = store.ListSleepEntries(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Water, err = store.ListWaterEntries(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Mood, err = store.ListMoodEntries(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Meals, err = store.ListMeals(ctx, user.ID); err != nil {
		return in, err
	}
	if in.Goals, err = store.ListGoals(ctx, user.ID); err != nil {
		return in, err
	}
	if in.JournalCount, err = store.CountJournalEntries(ctx, user.ID); err != nil {
		return in, err
	}
	return in, nil
}

// BuildDashboard passes streak through untouched; it is tracked upstream.
func BuildDashboard(ctx context.Context, store storage.Store, user *internal.User, now time.Time, streak int, waterGoalML float64) (*metrics.Dashboard, error) {
	in, err := LoadDashboardInput(ctx, store, user)
	if err != nil {
		return nil, err
	}
	in.Streak = streak
	in.WaterGoalML = waterGoalML
	d := metrics.BuildDashboard(in, now)
	return &d, nil
}
