package metrics

import (
	"time"

	"github.com/yourname/healthtracker/internal"
)

// DashboardInput is everything a user has logged, as fetched by the caller.
type DashboardInput struct {
	Health       []internal.HealthEntry   `json:"health"`
	Exercises    []internal.ExerciseEntry `json:"exercises"`
	Sleep        []internal.SleepEntry    `json:"sleep"`
	Water        []internal.WaterEntry    `json:"water"`
	Mood         []internal.MoodEntry     `json:"mood"`
	Meals        []internal.MealEntry     `json:"meals"`
	Goals        []internal.Goal          `json:"goals"`
	JournalCount int                      `json:"journal_count"`
	Streak       int                      `json:"streak"`
	WaterGoalML  float64                  `json:"water_goal_ml"`
}

type Dashboard struct {
	GeneratedAt      time.Time        `json:"generated_at"`
	Today            Totals           `json:"today"`
	Week             Totals           `json:"week"`
	Series           []DayPoint       `json:"series"`
	CaloriesConsumed float64          `json:"calories_consumed"`
	Sleep            SleepSummary     `json:"sleep"`
	Hydration        HydrationSummary `json:"hydration"`
	Mood             MoodSummary      `json:"mood"`
	Goals            []GoalProgress   `json:"goals"`
	Gamification     Gamification     `json:"gamification"`
}

// BuildDashboard derives every summary for the week ending with now.
func BuildDashboard(in DashboardInput, now time.Time) Dashboard {
	consumed := 0.0
	for _, m := range in.Meals {
		if sameDay(m.Date, now) {
			consumed += value(m.Calories)
		}
	}

	goals := make([]GoalProgress, 0, len(in.Goals))
	for _, g := range in.Goals {
		goals = append(goals, ComputeGoalProgress(g, in.Health, in.Exercises, now))
	}

	return Dashboard{
		GeneratedAt:      now,
		Today:            DailyTotals(in.Health, now),
		Week:             WeeklyTotals(in.Health, now),
		Series:           WeeklySeries(in.Health, now),
		CaloriesConsumed: round1(consumed),
		Sleep:            SummarizeSleep(SleepInWindow(in.Sleep, now, 7), 7),
		Hydration:        SummarizeHydration(in.Water, now, in.WaterGoalML),
		Mood:             SummarizeMood(MoodInWindow(in.Mood, now, 7)),
		Goals:            goals,
		Gamification:     Gamify(in.Health, in.JournalCount, in.Streak, now),
	}
}
