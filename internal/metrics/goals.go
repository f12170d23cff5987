package metrics

import (
	"time"

	"github.com/yourname/healthtracker/internal"
)

const DefaultWaterGoalML = 2000.0

type GoalProgress struct {
	Goal        internal.Goal `json:"goal"`
	Actual      float64       `json:"actual"`
	Percent     float64       `json:"percent"`
	Achieved    bool          `json:"achieved"`
	WindowStart time.Time     `json:"window_start"`
	WindowEnd   time.Time     `json:"window_end"`
}

// GoalPercentage is min(actual/target × 100, 100) to one decimal place.
// A non-positive target has no meaningful progress and yields 0.
func GoalPercentage(actual, target float64) float64 {
	if !positive(target) {
		return 0
	}
	return round1(clampPercent(value(actual) / target * 100))
}

func goalWindow(freq internal.GoalFrequency, now time.Time) window {
	if freq == internal.FrequencyWeekly {
		return lastDays(now, 7)
	}
	return lastDays(now, 1)
}

// ComputeGoalProgress sums the values relevant to goal inside its window.
// Calorie goals count calories burned from exercises and health entries;
// exercise goals count exercise minutes and logged workouts.
func ComputeGoalProgress(goal internal.Goal, health []internal.HealthEntry, exercises []internal.ExerciseEntry, now time.Time) GoalProgress {
	w := goalWindow(goal.Frequency, now)
	actual := 0.0
	for _, e := range exercises {
		if !w.contains(e.Date) {
			continue
		}
		switch goal.Type {
		case internal.GoalCalories:
			actual += value(float64(e.CaloriesBurned))
		case internal.GoalExercise:
			actual += value(e.Duration)
		}
	}
	for _, h := range health {
		if !w.contains(h.LoggedAt) {
			continue
		}
		switch goal.Type {
		case internal.GoalCalories:
			actual += value(h.CaloriesBurned)
		case internal.GoalExercise:
			actual += value(float64(h.Workouts))
		}
	}
	pct := GoalPercentage(actual, float64(goal.Target))
	return GoalProgress{
		Goal:        goal,
		Actual:      round1(actual),
		Percent:     pct,
		Achieved:    pct >= 100,
		WindowStart: w.from,
		WindowEnd:   w.to,
	}
}

type HydrationSummary struct {
	TodayML         float64 `json:"today_ml"`
	WeeklyML        float64 `json:"weekly_ml"`
	WeeklyAverageML float64 `json:"weekly_average_ml"`
	GoalML          float64 `json:"goal_ml"`
	TodayPercent    float64 `json:"today_percent"`
}

// SummarizeHydration totals water for the day of now and the seven days
// ending with it. A non-positive goal falls back to DefaultWaterGoalML.
func SummarizeHydration(entries []internal.WaterEntry, now time.Time, goalML float64) HydrationSummary {
	if !positive(goalML) {
		goalML = DefaultWaterGoalML
	}
	week := lastDays(now, 7)
	s := HydrationSummary{GoalML: goalML}
	for _, e := range entries {
		at := e.Date
		if at.IsZero() {
			at = e.Timestamp
		}
		amount := value(e.Amount)
		if sameDay(at, now) {
			s.TodayML += amount
		}
		if week.contains(at) {
			s.WeeklyML += amount
		}
	}
	s.WeeklyAverageML = round1(s.WeeklyML / 7)
	s.TodayPercent = GoalPercentage(s.TodayML, goalML)
	return s
}
