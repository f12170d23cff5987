package metrics

import (
	"time"

	"github.com/yourname/healthtracker/internal"
)

type Totals struct {
	Days              int     `json:"days"`
	Entries           int     `json:"entries"`
	Steps             int     `json:"steps"`
	Workouts          int     `json:"workouts"`
	CaloriesBurned    float64 `json:"calories_burned"`
	SleepHours        float64 `json:"sleep_hours"`
	Hydration         float64 `json:"hydration"`
	AverageSteps      float64 `json:"average_steps"`
	AverageCalories   float64 `json:"average_calories"`
	AverageSleepHours float64 `json:"average_sleep_hours"`
}

// DayPoint is one bar of the weekly chart.
type DayPoint struct {
	Date           string  `json:"date"`
	Steps          int     `json:"steps"`
	CaloriesBurned float64 `json:"calories_burned"`
	SleepHours     float64 `json:"sleep_hours"`
	Hydration      float64 `json:"hydration"`
}

// TotalsForDays sums health entries over the days ending with now's day.
// Averages are per calendar day, not per entry.
func TotalsForDays(health []internal.HealthEntry, now time.Time, days int) Totals {
	if days < 1 {
		days = 1
	}
	w := lastDays(now, days)
	t := Totals{Days: days}
	for _, h := range health {
		if !w.contains(h.LoggedAt) {
			continue
		}
		t.Entries++
		t.Steps += max(h.Steps, 0)
		t.Workouts += max(h.Workouts, 0)
		t.CaloriesBurned += value(h.CaloriesBurned)
		t.SleepHours += value(h.SleepHours)
		t.Hydration += value(h.HydrationLevel)
	}
	n := float64(days)
	t.CaloriesBurned = round1(t.CaloriesBurned)
	t.SleepHours = round1(t.SleepHours)
	t.Hydration = round1(t.Hydration)
	t.AverageSteps = round1(float64(t.Steps) / n)
	t.AverageCalories = round1(t.CaloriesBurned / n)
	t.AverageSleepHours = round1(t.SleepHours / n)
	return t
}

func DailyTotals(health []internal.HealthEntry, now time.Time) Totals {
	return TotalsForDays(health, now, 1)
}

func WeeklyTotals(health []internal.HealthEntry, now time.Time) Totals {
	return TotalsForDays(health, now, 7)
}

// WeeklySeries buckets the last seven days, oldest first.
func WeeklySeries(health []internal.HealthEntry, now time.Time) []DayPoint {
	w := lastDays(now, 7)
	points := make([]DayPoint, 7)
	index := make(map[string]int, 7)
	for i := range points {
		day := w.from.AddDate(0, 0, i).Format(dayLayout)
		points[i].Date = day
		index[day] = i
	}
	for _, h := range health {
		if !w.contains(h.LoggedAt) {
			continue
		}
		p := &points[index[h.LoggedAt.In(w.from.Location()).Format(dayLayout)]]
		p.Steps += max(h.Steps, 0)
		p.CaloriesBurned += value(h.CaloriesBurned)
		p.SleepHours += value(h.SleepHours)
		p.Hydration += value(h.HydrationLevel)
	}
	return points
}
