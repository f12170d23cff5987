package metrics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/yourname/healthtracker/internal"
)

const (
	fullNightHours = 8.0
	minutesPerDay  = 24 * 60
)

const (
	QualityExcellent = "Excellent"
	QualityGood      = "Good"
	QualityFair      = "Fair"
	QualityPoor      = "Poor"
)

type SleepSummary struct {
	Entries      int     `json:"entries"`
	Days         int     `json:"days"`
	AverageHours float64 `json:"average_hours"`
	Score        int     `json:"score"`
	Consistency  int     `json:"consistency"`
	Quality      string  `json:"quality"`
}

// ParseClock returns the minutes after midnight of an HH:MM wall-clock time.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SleepDuration returns the hours between two HH:MM times. A wake time
// earlier than the sleep time is taken to be on the following day.
func SleepDuration(sleepTime, wakeTime string) (float64, error) {
	from, err := ParseClock(sleepTime)
	if err != nil {
		return 0, err
	}
	to, err := ParseClock(wakeTime)
	if err != nil {
		return 0, err
	}
	diff := to - from
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60, nil
}

// EntryHours is the stored duration, or the one derived from the entry's
// clock times when none was stored.
func EntryHours(e internal.SleepEntry) float64 {
	if d := value(e.Duration); d > 0 {
		return d
	}
	d, err := SleepDuration(e.SleepTime, e.WakeTime)
	if err != nil {
		return 0
	}
	return d
}

// SleepScore compares the capped sleep in entries against eight hours for
// each of days, as a whole percentage in [0,100].
func SleepScore(entries []internal.SleepEntry, days int) int {
	if days <= 0 {
		return 0
	}
	total := 0.0
	for _, e := range entries {
		total += math.Min(EntryHours(e), fullNightHours)
	}
	pct := total / (float64(days) * fullNightHours) * 100
	return int(clampPercent(math.Round(pct)))
}

// ConsistencyScore is 1 - (mean absolute change between consecutive nights /
// mean duration) as a whole percentage. Fewer than two nights have no
// variance and score 100.
func ConsistencyScore(entries []internal.SleepEntry) int {
	if len(entries) < 2 {
		return 100
	}
	hours := chronologicalHours(entries)
	sum, diffs := hours[0], 0.0
	for i := 1; i < len(hours); i++ {
		sum += hours[i]
		diffs += math.Abs(hours[i] - hours[i-1])
	}
	avg := sum / float64(len(hours))
	if avg == 0 {
		return 100
	}
	meanDiff := diffs / float64(len(hours)-1)
	return int(clampPercent(math.Round((1 - meanDiff/avg) * 100)))
}

func chronologicalHours(entries []internal.SleepEntry) []float64 {
	sorted := make([]internal.SleepEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	hours := make([]float64, len(sorted))
	for i, e := range sorted {
		hours[i] = EntryHours(e)
	}
	return hours
}

func QualityLabel(score int) string {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityFair
	default:
		return QualityPoor
	}
}

// SummarizeSleep scores entries over a window of days.
func SummarizeSleep(entries []internal.SleepEntry, days int) SleepSummary {
	s := SleepSummary{
		Entries:     len(entries),
		Days:        days,
		Score:       SleepScore(entries, days),
		Consistency: ConsistencyScore(entries),
	}
	if len(entries) > 0 {
		total := 0.0
		for _, e := range entries {
			total += EntryHours(e)
		}
		s.AverageHours = round1(total / float64(len(entries)))
	}
	s.Quality = QualityLabel(s.Score)
	return s
}

// SleepInWindow keeps entries dated within the days ending with now's day.
func SleepInWindow(entries []internal.SleepEntry, now time.Time, days int) []internal.SleepEntry {
	w := lastDays(now, days)
	out := make([]internal.SleepEntry, 0, len(entries))
	for _, e := range entries {
		if w.contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
