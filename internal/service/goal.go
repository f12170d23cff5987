package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/storage"
)

type GoalRequest struct {
	Type      string `json:"type" validate:"required,oneof=calories exercise"`
	Target    int    `json:"target" validate:"required,gt=0"`
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly"`
}

func ValidateGoalRequest(req *GoalRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return nil
}

func CreateGoal(ctx context.Context, goalRepo storage.GoalRepository, user *internal.User, req *GoalRequest, now time.Time) (*internal.Goal, error) {
	goal := &internal.Goal{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      internal.GoalType(req.Type),
		Target:    req.Target,
		Frequency: internal.GoalFrequency(req.Frequency),
		CreatedAt: now,
	}
	if err := goalRepo.SetGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

type goalSources interface {
	storage.GoalRepository
	storage.HealthRepository
	storage.ExerciseRepository
}

// CalculateGoalProgress reports every goal the user has set. It returns
// internal.ErrNoGoals when there are none.
func CalculateGoalProgress(ctx context.Context, repo goalSources, user *internal.User, now time.Time) ([]metrics.GoalProgress, error) {
	goals, err := repo.ListGoals(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, internal.ErrNoGoals
	}
	health, err := repo.ListHealthEntries(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	exercises, err := repo.ListExercises(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	progress := make([]metrics.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, metrics.ComputeGoalProgress(g, health, exercises, now))
	}
	return progress, nil
}
