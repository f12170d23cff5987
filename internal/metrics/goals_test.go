package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
)

var testNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func TestGoalPercentage(t *testing.T) {
	assert.Equal(t, 100.0, metrics.GoalPercentage(50000, 5000))
	assert.Equal(t, 100.0, metrics.GoalPercentage(5000, 5000))
	assert.Equal(t, 50.0, metrics.GoalPercentage(2500, 5000))
	assert.Equal(t, 33.3, metrics.GoalPercentage(1, 3))
	assert.Equal(t, 0.0, metrics.GoalPercentage(100, 0))
	assert.Equal(t, 0.0, metrics.GoalPercentage(-20, 100))
}

func TestSummarizeHydration(t *testing.T) {
	entries := []internal.WaterEntry{
		{Date: testNow.Add(-2 * time.Hour), Amount: 500},
		{Date: testNow.Add(-time.Hour), Amount: 750},
		{Date: testNow.AddDate(0, 0, -3), Amount: 1000},
		{Date: testNow.AddDate(0, 0, -10), Amount: 2000},
		{Timestamp: testNow.Add(-30 * time.Minute), Amount: -300},
	}
	s := metrics.SummarizeHydration(entries, testNow, 0)
	assert.Equal(t, 1250.0, s.TodayML)
	assert.Equal(t, 2250.0, s.WeeklyML)
	assert.Equal(t, 321.4, s.WeeklyAverageML)
	assert.Equal(t, metrics.DefaultWaterGoalML, s.GoalML)
	assert.Equal(t, 62.5, s.TodayPercent)
}

func TestSummarizeHydration_ClampsAtGoal(t *testing.T) {
	entries := []internal.WaterEntry{{Date: testNow, Amount: 5000}}
	s := metrics.SummarizeHydration(entries, testNow, 2500)
	assert.Equal(t, 100.0, s.TodayPercent)

	empty := metrics.SummarizeHydration(nil, testNow, 2500)
	assert.Equal(t, 0.0, empty.TodayPercent)
	assert.Equal(t, 0.0, empty.WeeklyAverageML)
}

func TestComputeGoalProgress_DailyCalories(t *testing.T) {
	goal := internal.Goal{Type: internal.GoalCalories, Target: 400, Frequency: internal.FrequencyDaily}
	exercises := []internal.ExerciseEntry{
		{Date: testNow.Add(-time.Hour), CaloriesBurned: 300},
		{Date: testNow.AddDate(0, 0, -1), CaloriesBurned: 500},
	}
	health := []internal.HealthEntry{{LoggedAt: testNow.Add(-3 * time.Hour), CaloriesBurned: 200, Workouts: 4}}

	p := metrics.ComputeGoalProgress(goal, health, exercises, testNow)
	assert.Equal(t, 500.0, p.Actual)
	assert.Equal(t, 100.0, p.Percent)
	assert.True(t, p.Achieved)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), p.WindowStart)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), p.WindowEnd)
}

func TestComputeGoalProgress_WeeklyExercise(t *testing.T) {
	goal := internal.Goal{Type: internal.GoalExercise, Target: 150, Frequency: internal.FrequencyWeekly}
	exercises := []internal.ExerciseEntry{
		{Date: testNow, Duration: 30, CaloriesBurned: 999},
		{Date: testNow.AddDate(0, 0, -3), Duration: 45},
		{Date: testNow.AddDate(0, 0, -8), Duration: 60},
	}
	health := []internal.HealthEntry{{LoggedAt: testNow, Workouts: 2, CaloriesBurned: 999}}

	p := metrics.ComputeGoalProgress(goal, health, exercises, testNow)
	assert.Equal(t, 77.0, p.Actual)
	assert.Equal(t, 51.3, p.Percent)
	assert.False(t, p.Achieved)
}
