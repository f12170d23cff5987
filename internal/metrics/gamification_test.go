package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
)

func TestGamify_TenThousandSteps(t *testing.T) {
	g := metrics.Gamify([]internal.HealthEntry{{LoggedAt: testNow, Steps: 10000}}, 0, 0, testNow)
	assert.Equal(t, 100, g.Points)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, 0, g.XPInLevel)
	assert.Equal(t, 100, g.XPToNextLevel)
	assert.Equal(t, []string{metrics.BadgeStepMaster}, g.Badges)
}

func TestGamify_AllBadges(t *testing.T) {
	health := []internal.HealthEntry{
		{LoggedAt: testNow.AddDate(0, 0, -1), Steps: 15000, Workouts: 1, SleepHours: 8},
		{LoggedAt: testNow.AddDate(0, 0, -2), Steps: 10050, Workouts: 2, SleepHours: 7.5},
	}
	g := metrics.Gamify(health, 5, 12, testNow)
	assert.Equal(t, 520, g.Points)
	assert.Equal(t, 5, g.Level)
	assert.Equal(t, 20, g.XPInLevel)
	assert.Equal(t, 80, g.XPToNextLevel)
	assert.Equal(t, 12, g.Streak)
	assert.ElementsMatch(t, []string{
		metrics.BadgeStepMaster,
		metrics.BadgeSleepChampion,
		metrics.BadgeJournalGuru,
		metrics.BadgeHealthHero,
	}, g.Badges)
}

func TestPoints_IgnoresInvalidValues(t *testing.T) {
	health := []internal.HealthEntry{
		{Steps: -5000, Workouts: -2, SleepHours: -3},
		{Steps: 250, SleepHours: 0.25},
	}
	assert.Equal(t, 4, metrics.Points(health, -1))
	assert.Equal(t, 0, metrics.Level(-40))
}

func TestBadges_NoneWithoutActivity(t *testing.T) {
	badges := metrics.Badges(nil, 4, 499)
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}

func TestDailyChallenges(t *testing.T) {
	health := []internal.HealthEntry{
		{LoggedAt: testNow.Add(-time.Hour), Steps: 12000, SleepHours: 6},
		{LoggedAt: testNow.AddDate(0, 0, -1), Steps: 20000, SleepHours: 9},
	}
	challenges := metrics.DailyChallenges(health, testNow)
	require.Len(t, challenges, 2)

	assert.Equal(t, metrics.ChallengeStepHero, challenges[0].Name)
	assert.Equal(t, 12000.0, challenges[0].Progress)
	assert.True(t, challenges[0].Completed)

	assert.Equal(t, metrics.ChallengeSleepStar, challenges[1].Name)
	assert.Equal(t, 6.0, challenges[1].Progress)
	assert.False(t, challenges[1].Completed)
}
