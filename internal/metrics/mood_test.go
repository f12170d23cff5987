package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
)

func moods(pairs ...[2]int) []internal.MoodEntry {
	out := make([]internal.MoodEntry, len(pairs))
	for i, p := range pairs {
		out[i] = internal.MoodEntry{Mood: p[0], StressLevel: p[1]}
	}
	return out
}

func TestSummarizeMood(t *testing.T) {
	s := metrics.SummarizeMood(moods([2]int{8, 1}, [2]int{9, 2}, [2]int{10, 3}))
	assert.Equal(t, 3, s.Entries)
	assert.Equal(t, 9.0, s.AverageMood)
	assert.Equal(t, metrics.MoodPositive, s.MoodLabel)
	assert.Equal(t, 2.0, s.AverageStress)
	assert.Equal(t, metrics.StressCalm, s.StressLabel)

	s = metrics.SummarizeMood(moods([2]int{4, 7}, [2]int{5, 8}))
	assert.Equal(t, 4.5, s.AverageMood)
	assert.Equal(t, metrics.MoodNeutral, s.MoodLabel)
	assert.Equal(t, 7.5, s.AverageStress)
	assert.Equal(t, metrics.StressHigh, s.StressLabel)

	s = metrics.SummarizeMood(moods([2]int{2, 4}, [2]int{3, 5}, [2]int{3, 6}))
	assert.Equal(t, 2.7, s.AverageMood)
	assert.Equal(t, metrics.MoodLow, s.MoodLabel)
	assert.Equal(t, 5.0, s.AverageStress)
	assert.Equal(t, metrics.StressModerate, s.StressLabel)
}

func TestSummarizeMood_Empty(t *testing.T) {
	s := metrics.SummarizeMood(nil)
	assert.Equal(t, 0, s.Entries)
	assert.Equal(t, 0.0, s.AverageMood)
	assert.Equal(t, metrics.MoodLow, s.MoodLabel)
	assert.Equal(t, metrics.StressCalm, s.StressLabel)
}

func TestLabelThresholds(t *testing.T) {
	assert.Equal(t, metrics.MoodPositive, metrics.MoodLabel(7))
	assert.Equal(t, metrics.MoodNeutral, metrics.MoodLabel(6.9))
	assert.Equal(t, metrics.MoodNeutral, metrics.MoodLabel(4))
	assert.Equal(t, metrics.MoodLow, metrics.MoodLabel(3.9))
	assert.Equal(t, metrics.StressCalm, metrics.StressLabel(3))
	assert.Equal(t, metrics.StressModerate, metrics.StressLabel(3.1))
	assert.Equal(t, metrics.StressModerate, metrics.StressLabel(6))
	assert.Equal(t, metrics.StressHigh, metrics.StressLabel(6.1))
}

func TestMoodInWindow(t *testing.T) {
	entries := []internal.MoodEntry{
		{ID: "later-today", Date: testNow.Add(3 * time.Hour)},
		{ID: "this-morning", Date: testNow.Add(-6 * time.Hour)},
		{ID: "six-days-ago", Date: testNow.AddDate(0, 0, -6)},
		{ID: "seven-days-ago", Date: testNow.AddDate(0, 0, -7)},
		{ID: "tomorrow", Date: testNow.AddDate(0, 0, 1)},
	}
	got := metrics.MoodInWindow(entries, testNow, 7)
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"later-today", "this-morning", "six-days-ago"}, ids)

	assert.Len(t, metrics.MoodInWindow(entries, testNow, 1), 2)
}
