package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
)

func weekOfHealth() []internal.HealthEntry {
	return []internal.HealthEntry{
		{LoggedAt: testNow.Add(-time.Hour), Steps: 6000, Workouts: 1, CaloriesBurned: 320, SleepHours: 7, HydrationLevel: 1.5},
		{LoggedAt: testNow.Add(-2 * time.Hour), Steps: 2000, CaloriesBurned: 80},
		{LoggedAt: testNow.AddDate(0, 0, -2), Steps: 9000, Workouts: 2, CaloriesBurned: 410.5, SleepHours: 8},
		{LoggedAt: testNow.AddDate(0, 0, -6), Steps: 4000, SleepHours: 6.5},
		{LoggedAt: testNow.AddDate(0, 0, -9), Steps: 50000},
	}
}

func TestDailyTotals(t *testing.T) {
	d := metrics.DailyTotals(weekOfHealth(), testNow)
	assert.Equal(t, 1, d.Days)
	assert.Equal(t, 2, d.Entries)
	assert.Equal(t, 8000, d.Steps)
	assert.Equal(t, 1, d.Workouts)
	assert.Equal(t, 400.0, d.CaloriesBurned)
	assert.Equal(t, 8000.0, d.AverageSteps)
}

func TestWeeklyTotals(t *testing.T) {
	w := metrics.WeeklyTotals(weekOfHealth(), testNow)
	assert.Equal(t, 7, w.Days)
	assert.Equal(t, 4, w.Entries)
	assert.Equal(t, 21000, w.Steps)
	assert.Equal(t, 3, w.Workouts)
	assert.Equal(t, 810.5, w.CaloriesBurned)
	assert.Equal(t, 21.5, w.SleepHours)
	assert.Equal(t, 3000.0, w.AverageSteps)
	assert.Equal(t, 3.1, w.AverageSleepHours)
}

func TestWeeklySeries(t *testing.T) {
	series := metrics.WeeklySeries(weekOfHealth(), testNow)
	require.Len(t, series, 7)
	assert.Equal(t, "2026-10-10", series[0].Date)
	assert.Equal(t, 4000, series[0].Steps)
	assert.Equal(t, "2026-10-14", series[4].Date)
	assert.Equal(t, 9000, series[4].Steps)
	assert.Equal(t, "2026-10-16", series[6].Date)
	assert.Equal(t, 8000, series[6].Steps)
	assert.Equal(t, 1.5, series[6].Hydration)
}
