package storage

import (
	"context"

	"github.com/yourname/healthtracker/internal"
)

type UserRepository interface {
	GetUserByToken(ctx context.Context, token string) (*internal.User, error)
}

type HealthRepository interface {
	SaveHealthEntry(ctx context.Context, entry *internal.HealthEntry) error
	// Newest first
	ListHealthEntries(ctx context.Context, userID string) ([]internal.HealthEntry, error)
	// Returns internal.ErrNotFound when the user has no entry with that id
	DeleteHealthEntry(ctx context.Context, userID, id string) error
}

type ExerciseRepository interface {
	SaveExercise(ctx context.Context, entry *internal.ExerciseEntry) error
	ListExercises(ctx context.Context, userID string) ([]internal.ExerciseEntry, error)
}

type SleepRepository interface {
	SaveSleepEntry(ctx context.Context, entry *internal.SleepEntry) error
	ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error)
}

type WaterRepository interface {
	SaveWaterEntry(ctx context.Context, entry *internal.WaterEntry) error
	ListWaterEntries(ctx context.Context, userID string) ([]internal.WaterEntry, error)
}

type MoodRepository interface {
	SaveMoodEntry(ctx context.Context, entry *internal.MoodEntry) error
	ListMoodEntries(ctx context.Context, userID string) ([]internal.MoodEntry, error)
}

type MealRepository interface {
	SaveMeal(ctx context.Context, entry *internal.MealEntry) error
	ListMeals(ctx context.Context, userID string) ([]internal.MealEntry, error)
}

type JournalRepository interface {
	SaveJournalEntry(ctx context.Context, entry *internal.JournalEntry) error
	CountJournalEntries(ctx context.Context, userID string) (int, error)
}

type GoalRepository interface {
	// Replaces the user's goal of the same type and frequency
	SetGoal(ctx context.Context, goal *internal.Goal) error
	ListGoals(ctx context.Context, userID string) ([]internal.Goal, error)
}

type ReminderRepository interface {
	// Inserts or updates by ID
	SaveReminder(ctx context.Context, reminder *internal.Reminder) error
	GetReminder(ctx context.Context, userID, id string) (*internal.Reminder, error)
	ListReminders(ctx context.Context, userID string) ([]internal.Reminder, error)
}

// Store is implemented by every storage backend.
type Store interface {
	UserRepository
	HealthRepository
	ExerciseRepository
	SleepRepository
	WaterRepository
	MoodRepository
	MealRepository
	JournalRepository
	GoalRepository
	ReminderRepository
	Close() error
}
