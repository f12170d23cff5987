package metrics

import (
	"time"

	"github.com/yourname/healthtracker/internal"
)

const (
	MoodPositive = "Positive"
	MoodNeutral  = "Neutral"
	MoodLow      = "Low"

	StressCalm     = "Calm"
	StressModerate = "Moderate"
	StressHigh     = "High"
)

type MoodSummary struct {
	Entries       int     `json:"entries"`
	AverageMood   float64 `json:"average_mood"`
	AverageStress float64 `json:"average_stress"`
	MoodLabel     string  `json:"mood_label"`
	StressLabel   string  `json:"stress_label"`
}

func MoodLabel(avg float64) string {
	switch {
	case avg >= 7:
		return MoodPositive
	case avg >= 4:
		return MoodNeutral
	default:
		return MoodLow
	}
}

func StressLabel(avg float64) string {
	switch {
	case avg <= 3:
		return StressCalm
	case avg <= 6:
		return StressModerate
	default:
		return StressHigh
	}
}

func SummarizeMood(entries []internal.MoodEntry) MoodSummary {
	s := MoodSummary{Entries: len(entries)}
	if len(entries) > 0 {
		mood, stress := 0, 0
		for _, e := range entries {
			mood += max(e.Mood, 0)
			stress += max(e.StressLevel, 0)
		}
		n := float64(len(entries))
		s.AverageMood = round1(float64(mood) / n)
		s.AverageStress = round1(float64(stress) / n)
	}
	s.MoodLabel = MoodLabel(s.AverageMood)
	s.StressLabel = StressLabel(s.AverageStress)
	return s
}

// MoodInWindow keeps entries dated within the days ending with now's day.
func MoodInWindow(entries []internal.MoodEntry, now time.Time, days int) []internal.MoodEntry {
	w := lastDays(now, days)
	out := make([]internal.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if w.contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
