package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/service"
	"github.com/yourname/healthtracker/internal/storage"
)

var (
	testUser = &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Test User", WeightKg: 70}
	testNow  = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
)

func setupStore(t *testing.T) *storage.FileStorage {
	s, err := storage.NewFileStorage(t.TempDir(), internal.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type failingRepo struct{}

var errDB = errors.New("db error")

func (failingRepo) SaveExercise(ctx context.Context, e *internal.ExerciseEntry) error { return errDB }
func (failingRepo) ListExercises(ctx context.Context, userID string) ([]internal.ExerciseEntry, error) {
	return nil, errDB
}
func (failingRepo) SaveSleepEntry(ctx context.Context, e *internal.SleepEntry) error { return errDB }
func (failingRepo) ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error) {
	return nil, errDB
}

func TestValidate(t *testing.T) {
	assert.NoError(t, service.Validate(&service.SleepEntryRequest{SleepTime: "23:00", WakeTime: "06:00"}))

	err := service.Validate(&service.SleepEntryRequest{SleepTime: "11pm", WakeTime: "06:00"})
	require.Error(t, err)
	assert.True(t, service.IsInvalidInput(err))

	assert.NoError(t, service.Validate(&service.ExerciseRequest{Name: "running", Duration: 30}))
	assert.Error(t, service.Validate(&service.ExerciseRequest{Name: "Quidditch", Duration: 30}))
	assert.Error(t, service.Validate(&service.ExerciseRequest{Name: "Running", Duration: 0}))

	assert.Error(t, service.Validate(&service.MoodEntryRequest{Mood: 11, StressLevel: 3}))
	assert.Error(t, service.Validate(&service.HealthEntryRequest{Steps: -1, ActivityType: "walking"}))
	assert.Error(t, service.Validate(&service.HealthEntryRequest{ActivityType: "skydiving"}))
	assert.Error(t, service.Validate(&service.ReminderRequest{Title: "x", Days: []int{7}}))
	assert.Error(t, service.ValidateGoalRequest(&service.GoalRequest{Type: "steps", Target: 10, Frequency: "daily"}))
	assert.NoError(t, service.ValidateGoalRequest(&service.GoalRequest{Type: "calories", Target: 500, Frequency: "weekly"}))

	assert.False(t, service.IsInvalidInput(errDB))
	assert.True(t, service.IsInvalidInput(metrics.ErrUnknownActivity))
}

func TestCreateExercise(t *testing.T) {
	s := setupStore(t)
	e, err := service.CreateExercise(context.Background(), s, testUser, &service.ExerciseRequest{Name: "running", Duration: 30}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Running", e.Name)
	assert.Equal(t, 9.8, e.MET)
	assert.Equal(t, 343, e.CaloriesBurned)
	assert.Equal(t, testNow, e.Date)

	e, err = service.CreateExercise(context.Background(), s, testUser, &service.ExerciseRequest{Name: "Walking", Duration: 45, WeightKg: 80}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 210, e.CaloriesBurned, "request weight wins over profile weight")

	stored, err := s.ListExercises(context.Background(), testUser.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestCreateExercise_Rejects(t *testing.T) {
	s := setupStore(t)
	noWeight := &internal.User{ID: "u2"}
	_, err := service.CreateExercise(context.Background(), s, noWeight, &service.ExerciseRequest{Name: "Yoga", Duration: 30}, testNow)
	assert.ErrorIs(t, err, metrics.ErrInvalidWeight)

	_, err = service.CreateExercise(context.Background(), s, testUser, &service.ExerciseRequest{Name: "Chess", Duration: 30}, testNow)
	assert.ErrorIs(t, err, metrics.ErrUnknownActivity)

	_, err = service.CreateExercise(context.Background(), failingRepo{}, testUser, &service.ExerciseRequest{Name: "Yoga", Duration: 30}, testNow)
	assert.ErrorIs(t, err, errDB)
}

func TestCreateSleepEntry_DerivesDuration(t *testing.T) {
	s := setupStore(t)
	e, err := service.CreateSleepEntry(context.Background(), s, testUser, &service.SleepEntryRequest{SleepTime: "23:00", WakeTime: "06:00"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 7.0, e.Duration)

	_, err = service.CreateSleepEntry(context.Background(), failingRepo{}, testUser, &service.SleepEntryRequest{SleepTime: "23:00", WakeTime: "06:00"}, testNow)
	assert.ErrorIs(t, err, errDB)
}

func TestCalculateSleepStats(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		day := testNow.AddDate(0, 0, -i)
		_, err := service.CreateSleepEntry(ctx, s, testUser, &service.SleepEntryRequest{Date: &day, SleepTime: "22:00", WakeTime: "06:00"}, testNow)
		require.NoError(t, err)
	}
	stats, err := service.CalculateSleepStats(ctx, s, testUser, testNow, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, 100, stats.Score)
	assert.Equal(t, 100, stats.Consistency)
	assert.Equal(t, metrics.QualityExcellent, stats.Quality)

	_, err = service.CalculateSleepStats(ctx, failingRepo{}, testUser, testNow, 7)
	assert.ErrorIs(t, err, errDB)
}

func TestCalculateGoalProgress(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := service.CalculateGoalProgress(ctx, s, testUser, testNow)
	assert.ErrorIs(t, err, internal.ErrNoGoals)

	_, err = service.CreateGoal(ctx, s, testUser, &service.GoalRequest{Type: "exercise", Target: 60, Frequency: "daily"}, testNow)
	require.NoError(t, err)
	_, err = service.CreateExercise(ctx, s, testUser, &service.ExerciseRequest{Name: "Cycling", Duration: 45}, testNow)
	require.NoError(t, err)

	progress, err := service.CalculateGoalProgress(ctx, s, testUser, testNow)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 45.0, progress[0].Actual)
	assert.Equal(t, 75.0, progress[0].Percent)
}

func TestHydrationAndMood(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	for _, ml := range []float64{250, 500, 250} {
		_, err := service.CreateWaterEntry(ctx, s, testUser, &service.WaterEntryRequest{Amount: ml}, testNow)
		require.NoError(t, err)
	}
	h, err := service.CalculateHydration(ctx, s, testUser, testNow, 2000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, h.TodayML)
	assert.Equal(t, 50.0, h.TodayPercent)

	old := testNow.AddDate(0, 0, -30)
	for _, m := range []service.MoodEntryRequest{
		{Mood: 8, StressLevel: 1},
		{Mood: 9, StressLevel: 2},
		{Mood: 10, StressLevel: 3},
		{Date: &old, Mood: 1, StressLevel: 10},
	} {
		_, err := service.CreateMoodEntry(ctx, s, testUser, &m, testNow)
		require.NoError(t, err)
	}
	mood, err := service.CalculateMood(ctx, s, testUser, testNow, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, mood.Entries)
	assert.Equal(t, 9.0, mood.AverageMood)
	assert.Equal(t, 2.0, mood.AverageStress)
}

func TestReminders_PollAndAck(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	r, err := service.CreateReminder(ctx, s, testUser, &service.ReminderRequest{Title: "Drink water", Hour: 14}, testNow)
	require.NoError(t, err)
	assert.True(t, r.Enabled)

	due, err := service.DueReminders(ctx, s, testUser, testNow)
	require.NoError(t, err)
	require.Len(t, due, 1)

	_, err = service.AckReminder(ctx, s, testUser, r.ID, testNow)
	require.NoError(t, err)
	due, err = service.DueReminders(ctx, s, testUser, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = service.DueReminders(ctx, s, testUser, testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, due, 1, "due again the next day")

	_, err = service.AckReminder(ctx, s, testUser, "missing", testNow)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestBuildDashboard(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	_, err := service.CreateHealthEntry(ctx, s, testUser, &service.HealthEntryRequest{Steps: 10000, SleepHours: 8, ActivityType: "walking"}, testNow)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := service.CreateJournalEntry(ctx, s, testUser, &service.JournalRequest{Title: "Entry", Content: "Felt good"}, testNow)
		require.NoError(t, err)
	}
	_, err = service.CreateMeal(ctx, s, testUser, &service.MealRequest{Name: "Salad", Calories: 420}, testNow)
	require.NoError(t, err)

	d, err := service.BuildDashboard(ctx, s, testUser, testNow, 4, 2000)
	require.NoError(t, err)
	assert.Equal(t, 10000, d.Today.Steps)
	assert.Equal(t, 420.0, d.CaloriesConsumed)
	// 100 from steps, 80 from sleep, 100 from journal
	assert.Equal(t, 280, d.Gamification.Points)
	assert.Equal(t, 2, d.Gamification.Level)
	assert.Equal(t, 4, d.Gamification.Streak)
	assert.ElementsMatch(t, []string{metrics.BadgeStepMaster, metrics.BadgeSleepChampion, metrics.BadgeJournalGuru}, d.Gamification.Badges)
}

func TestCalculateMood_MatchesDashboardForLaterToday(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	later := testNow.Add(3 * time.Hour)
	_, err := service.CreateMoodEntry(ctx, s, testUser, &service.MoodEntryRequest{Date: &later, Mood: 9, StressLevel: 2}, testNow)
	require.NoError(t, err)

	mood, err := service.CalculateMood(ctx, s, testUser, testNow, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, mood.Entries)
	assert.Equal(t, metrics.MoodPositive, mood.MoodLabel)

	d, err := service.BuildDashboard(ctx, s, testUser, testNow, 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, mood, d.Mood)
}
