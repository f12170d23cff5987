package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/storage"
)

type HealthEntryRequest struct {
	LoggedAt          *time.Time `json:"logged_at"`
	Steps             int        `json:"steps" validate:"gte=0"`
	Workouts          int        `json:"workouts" validate:"gte=0"`
	CaloriesBurned    float64    `json:"calories_burned" validate:"gte=0"`
	SleepHours        float64    `json:"sleep_hours" validate:"gte=0,lte=24"`
	HydrationLevel    float64    `json:"hydration_level" validate:"gte=0"`
	MoodScore         float64    `json:"mood_score" validate:"gte=0,lte=10"`
	HeartRate         int        `json:"heart_rate" validate:"gte=0,lte=250"`
	MentalHealthScore float64    `json:"mental_health_score" validate:"gte=0,lte=10"`
	ActivityType      string     `json:"activity_type" validate:"required,oneof=walking running cycling swimming yoga strength other"`
}

type ExerciseRequest struct {
	Date     *time.Time `json:"date"`
	Name     string     `json:"name" validate:"required,met_activity"`
	Duration float64    `json:"duration" validate:"gt=0,lte=1440"`
	WeightKg float64    `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
}

type SleepEntryRequest struct {
	Date      *time.Time `json:"date"`
	SleepTime string     `json:"sleep_time" validate:"required,clock"`
	WakeTime  string     `json:"wake_time" validate:"required,clock"`
}

type WaterEntryRequest struct {
	Date   *time.Time `json:"date"`
	Amount float64    `json:"amount" validate:"gt=0,lte=10000"`
}

type MoodEntryRequest struct {
	Date        *time.Time `json:"date"`
	Mood        int        `json:"mood" validate:"required,gte=1,lte=10"`
	StressLevel int        `json:"stress_level" validate:"required,gte=1,lte=10"`
	Notes       string     `json:"notes,omitempty" validate:"max=2000"`
}

type MealRequest struct {
	Date     *time.Time `json:"date"`
	Name     string     `json:"name" validate:"required,max=200"`
	Calories float64    `json:"calories" validate:"gte=0"`
	ProteinG float64    `json:"protein_g" validate:"gte=0"`
	CarbsG   float64    `json:"carbs_g" validate:"gte=0"`
	FatG     float64    `json:"fat_g" validate:"gte=0"`
}

type JournalRequest struct {
	Date    *time.Time `json:"date"`
	Title   string     `json:"title" validate:"required,max=200"`
	Content string     `json:"content" validate:"required"`
}

// Validate runs the struct tags of any request type.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

func dateOr(d *time.Time, now time.Time) time.Time {
	if d == nil || d.IsZero() {
		return now
	}
	return *d
}

func CreateHealthEntry(ctx context.Context, repo storage.HealthRepository, user *internal.User, req *HealthEntryRequest, now time.Time) (*internal.HealthEntry, error) {
	entry := &internal.HealthEntry{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		LoggedAt:          dateOr(req.LoggedAt, now),
		Steps:             req.Steps,
		Workouts:          req.Workouts,
		CaloriesBurned:    req.CaloriesBurned,
		SleepHours:        req.SleepHours,
		HydrationLevel:    req.HydrationLevel,
		MoodScore:         req.MoodScore,
		HeartRate:         req.HeartRate,
		MentalHealthScore: req.MentalHealthScore,
		ActivityType:      internal.ActivityType(req.ActivityType),
	}
	if err := repo.SaveHealthEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateExercise estimates calories from the MET table. The request weight
// wins over the weight on the user profile.
func CreateExercise(ctx context.Context, repo storage.ExerciseRepository, user *internal.User, req *ExerciseRequest, now time.Time) (*internal.ExerciseEntry, error) {
	activity, err := metrics.LookupMET(req.Name)
	if err != nil {
		return nil, err
	}
	weight := req.WeightKg
	if weight == 0 {
		weight = user.WeightKg
	}
	kcal, err := metrics.CaloriesForMET(activity.MET, req.Duration, weight)
	if err != nil {
		return nil, err
	}
	entry := &internal.ExerciseEntry{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Date:           dateOr(req.Date, now),
		Name:           activity.Name,
		MET:            activity.MET,
		Duration:       req.Duration,
		CaloriesBurned: kcal,
		CreatedAt:      now,
	}
	if err := repo.SaveExercise(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateSleepEntry(ctx context.Context, repo storage.SleepRepository, user *internal.User, req *SleepEntryRequest, now time.Time) (*internal.SleepEntry, error) {
	hours, err := metrics.SleepDuration(req.SleepTime, req.WakeTime)
	if err != nil {
		return nil, err
	}
	entry := &internal.SleepEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      dateOr(req.Date, now),
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Duration:  hours,
		CreatedAt: now,
	}
	if err := repo.SaveSleepEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateWaterEntry(ctx context.Context, repo storage.WaterRepository, user *internal.User, req *WaterEntryRequest, now time.Time) (*internal.WaterEntry, error) {
	entry := &internal.WaterEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      dateOr(req.Date, now),
		Amount:    req.Amount,
		Timestamp: now,
	}
	if err := repo.SaveWaterEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateMoodEntry(ctx context.Context, repo storage.MoodRepository, user *internal.User, req *MoodEntryRequest, now time.Time) (*internal.MoodEntry, error) {
	entry := &internal.MoodEntry{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Date:        dateOr(req.Date, now),
		Mood:        req.Mood,
		StressLevel: req.StressLevel,
		Notes:       req.Notes,
	}
	if err := repo.SaveMoodEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateMeal(ctx context.Context, repo storage.MealRepository, user *internal.User, req *MealRequest, now time.Time) (*internal.MealEntry, error) {
	entry := &internal.MealEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      dateOr(req.Date, now),
		Name:      req.Name,
		Calories:  req.Calories,
		ProteinG:  req.ProteinG,
		CarbsG:    req.CarbsG,
		FatG:      req.FatG,
		CreatedAt: now,
	}
	if err := repo.SaveMeal(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateJournalEntry(ctx context.Context, repo storage.JournalRepository, user *internal.User, req *JournalRequest, now time.Time) (*internal.JournalEntry, error) {
	entry := &internal.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      dateOr(req.Date, now),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
	}
	if err := repo.SaveJournalEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
