package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/storage"
)

type ReminderRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Days    []int  `json:"days" validate:"max=7,dive,gte=0,lte=6"`
	Hour    int    `json:"hour" validate:"gte=0,lte=23"`
	Minute  int    `json:"minute" validate:"gte=0,lte=59"`
	Enabled *bool  `json:"enabled"`
}

func CreateReminder(ctx context.Context, repo storage.ReminderRepository, user *internal.User, req *ReminderRequest, now time.Time) (*internal.Reminder, error) {
	days := make([]time.Weekday, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, time.Weekday(d))
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	r := &internal.Reminder{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Title:     req.Title,
		Days:      days,
		Hour:      req.Hour,
		Minute:    req.Minute,
		Enabled:   enabled,
		CreatedAt: now,
	}
	if err := repo.SaveReminder(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DueReminders only reads; callers poll it and acknowledge what they show.
func DueReminders(ctx context.Context, repo storage.ReminderRepository, user *internal.User, now time.Time) ([]internal.Reminder, error) {
	all, err := repo.ListReminders(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return metrics.DueReminders(all, now), nil
}

// AckReminder records that the reminder was shown at now, so it is not due
// again until its next slot.
func AckReminder(ctx context.Context, repo storage.ReminderRepository, user *internal.User, id string, now time.Time) (*internal.Reminder, error) {
	r, err := repo.GetReminder(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	r.LastFiredAt = now
	if err := repo.SaveReminder(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
