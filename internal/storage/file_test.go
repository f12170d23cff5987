package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/storage"
)

func setupFileStorage(t *testing.T) (*storage.FileStorage, string) {
	dir := t.TempDir()
	users := `[{"id":"u1","token":"MOCK-TOKEN","name":"Test User","weight_kg":72}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.UsersFile), []byte(users), 0644))
	s, err := storage.NewFileStorage(dir, internal.NewNopLogger())
	require.NoError(t, err)
	return s, dir
}

func TestFileGetUserByToken(t *testing.T) {
	s, _ := setupFileStorage(t)
	defer s.Close()

	u, err := s.GetUserByToken(context.Background(), "MOCK-TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, 72.0, u.WeightKg)

	_, err = s.GetUserByToken(context.Background(), "other")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestFileHealthEntries_NewestFirst(t *testing.T) {
	s, _ := setupFileStorage(t)
	defer s.Close()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveHealthEntry(ctx, &internal.HealthEntry{ID: "old", UserID: "u1", LoggedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, s.SaveHealthEntry(ctx, &internal.HealthEntry{ID: "new", UserID: "u1", LoggedAt: now}))
	require.NoError(t, s.SaveHealthEntry(ctx, &internal.HealthEntry{ID: "mid", UserID: "u1", LoggedAt: now.Add(-24 * time.Hour)}))
	require.NoError(t, s.SaveHealthEntry(ctx, &internal.HealthEntry{ID: "theirs", UserID: "u2", LoggedAt: now}))

	entries, err := s.ListHealthEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "new", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)
	assert.Equal(t, "old", entries[2].ID)

	empty, err := s.ListHealthEntries(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFileDeleteHealthEntry(t *testing.T) {
	s, _ := setupFileStorage(t)
	defer s.Close()
	ctx := context.Background()
	require.NoError(t, s.SaveHealthEntry(ctx, &internal.HealthEntry{ID: "h1", UserID: "u1", LoggedAt: time.Now()}))

	assert.ErrorIs(t, s.DeleteHealthEntry(ctx, "u2", "h1"), internal.ErrNotFound, "only the owner can delete")
	assert.NoError(t, s.DeleteHealthEntry(ctx, "u1", "h1"))
	assert.ErrorIs(t, s.DeleteHealthEntry(ctx, "u1", "h1"), internal.ErrNotFound)

	entries, _ := s.ListHealthEntries(ctx, "u1")
	assert.Empty(t, entries)
}

func TestFileSetGoal_ReplacesSameTypeAndFrequency(t *testing.T) {
	s, _ := setupFileStorage(t)
	defer s.Close()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SetGoal(ctx, &internal.Goal{ID: "g1", UserID: "u1", Type: internal.GoalCalories, Target: 400, Frequency: internal.FrequencyDaily, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, s.SetGoal(ctx, &internal.Goal{ID: "g2", UserID: "u1", Type: internal.GoalExercise, Target: 150, Frequency: internal.FrequencyWeekly, CreatedAt: now.Add(-time.Minute)}))
	require.NoError(t, s.SetGoal(ctx, &internal.Goal{ID: "g3", UserID: "u1", Type: internal.GoalCalories, Target: 600, Frequency: internal.FrequencyDaily, CreatedAt: now}))

	goals, err := s.ListGoals(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "g3", goals[0].ID)
	assert.Equal(t, 600, goals[0].Target)
	assert.Equal(t, "g2", goals[1].ID)
}

func TestFileReminders(t *testing.T) {
	s, _ := setupFileStorage(t)
	defer s.Close()
	ctx := context.Background()
	r := &internal.Reminder{ID: "r1", UserID: "u1", Title: "Stretch", Hour: 9, Enabled: true, CreatedAt: time.Now()}
	require.NoError(t, s.SaveReminder(ctx, r))

	got, err := s.GetReminder(ctx, "u1", "r1")
	require.NoError(t, err)
	got.LastFiredAt = time.Now()
	require.NoError(t, s.SaveReminder(ctx, got))

	all, err := s.ListReminders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1, "saving again updates in place")
	assert.False(t, all[0].LastFiredAt.IsZero())

	_, err = s.GetReminder(ctx, "u2", "r1")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	s, dir := setupFileStorage(t)
	ctx := context.Background()
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "s1", UserID: "u1", Date: day, SleepTime: "23:00", WakeTime: "06:00", Duration: 7}))
	require.NoError(t, s.SaveWaterEntry(ctx, &internal.WaterEntry{ID: "w1", UserID: "u1", Date: day, Amount: 500, Timestamp: day}))
	require.NoError(t, s.SaveMoodEntry(ctx, &internal.MoodEntry{ID: "m1", UserID: "u1", Date: day, Mood: 8, StressLevel: 2}))
	require.NoError(t, s.SaveExercise(ctx, &internal.ExerciseEntry{ID: "e1", UserID: "u1", Date: day, Name: "Yoga", MET: 2.5, Duration: 60, CaloriesBurned: 180}))
	require.NoError(t, s.SaveMeal(ctx, &internal.MealEntry{ID: "meal1", UserID: "u1", Date: day, Name: "Oats", Calories: 350}))
	require.NoError(t, s.SaveJournalEntry(ctx, &internal.JournalEntry{ID: "j1", UserID: "u1", Date: day, Title: "Day one"}))
	require.NoError(t, s.Close())

	_, err := os.Stat(filepath.Join(dir, "sleep_entries.json"))
	require.NoError(t, err)

	reopened, err := storage.NewFileStorage(dir, internal.NewNopLogger())
	require.NoError(t, err)
	defer reopened.Close()

	sleep, err := reopened.ListSleepEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sleep, 1)
	assert.Equal(t, 7.0, sleep[0].Duration)
	assert.True(t, day.Equal(sleep[0].Date))

	water, _ := reopened.ListWaterEntries(ctx, "u1")
	assert.Len(t, water, 1)
	mood, _ := reopened.ListMoodEntries(ctx, "u1")
	assert.Len(t, mood, 1)
	exercises, _ := reopened.ListExercises(ctx, "u1")
	require.Len(t, exercises, 1)
	assert.Equal(t, 180, exercises[0].CaloriesBurned)
	meals, _ := reopened.ListMeals(ctx, "u1")
	assert.Len(t, meals, 1)
	n, err := reopened.CountJournalEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewFileStorage_EmptyDir(t *testing.T) {
	s, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "fresh"), internal.NewNopLogger())
	require.NoError(t, err)
	defer s.Close()
	goals, err := s.ListGoals(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, goals)
}
