package internal

import "time"

type User struct {
	ID       string  `json:"id"`
	Token    string  `json:"token"`
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg,omitempty"`
}

type ActivityType string

const (
	ActivityWalking  ActivityType = "walking"
	ActivityRunning  ActivityType = "running"
	ActivityCycling  ActivityType = "cycling"
	ActivitySwimming ActivityType = "swimming"
	ActivityYoga     ActivityType = "yoga"
	ActivityStrength ActivityType = "strength"
	ActivityOther    ActivityType = "other"
)

type HealthEntry struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	LoggedAt          time.Time    `json:"logged_at"`
	Steps             int          `json:"steps"`
	Workouts          int          `json:"workouts"`
	CaloriesBurned    float64      `json:"calories_burned"`
	SleepHours        float64      `json:"sleep_hours"`
	HydrationLevel    float64      `json:"hydration_level"`
	MoodScore         float64      `json:"mood_score"`
	HeartRate         int          `json:"heart_rate,omitempty"`
	MentalHealthScore float64      `json:"mental_health_score,omitempty"`
	ActivityType      ActivityType `json:"activity_type"`
}

type ExerciseEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Date           time.Time `json:"date"`
	Name           string    `json:"name"`
	MET            float64   `json:"met"`
	Duration       float64   `json:"duration"` // minutes
	CaloriesBurned int       `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

type SleepEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	SleepTime string    `json:"sleep_time"` // HH:MM
	WakeTime  string    `json:"wake_time"`  // HH:MM
	Duration  float64   `json:"duration"`   // hours
	CreatedAt time.Time `json:"created_at"`
}

type WaterEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"` // ml
	Timestamp time.Time `json:"timestamp"`
}

type MoodEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
	Mood        int       `json:"mood"`         // 1–10
	StressLevel int       `json:"stress_level"` // 1–10
	Notes       string    `json:"notes,omitempty"`
}

type MealEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	ProteinG  float64   `json:"protein_g,omitempty"`
	CarbsG    float64   `json:"carbs_g,omitempty"`
	FatG      float64   `json:"fat_g,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type GoalType string

const (
	GoalCalories GoalType = "calories"
	GoalExercise GoalType = "exercise"
)

type GoalFrequency string

const (
	FrequencyDaily  GoalFrequency = "daily"
	FrequencyWeekly GoalFrequency = "weekly"
)

type Goal struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Type      GoalType      `json:"type"`
	Target    int           `json:"target"`
	Frequency GoalFrequency `json:"frequency"`
	CreatedAt time.Time     `json:"created_at"`
}

// Reminder fires once per scheduled day at Hour:Minute local time. An empty
// Days list means every day.
type Reminder struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Days        []time.Weekday `json:"days,omitempty"`
	Hour        int            `json:"hour"`
	Minute      int            `json:"minute"`
	Enabled     bool           `json:"enabled"`
	LastFiredAt time.Time      `json:"last_fired_at"`
	CreatedAt   time.Time      `json:"created_at"`
}
