package metrics

import (
	"slices"
	"time"

	"github.com/yourname/healthtracker/internal"
)

// ScheduledAt is the time r is due on the day of now, and whether r is
// scheduled for that day at all.
func ScheduledAt(r internal.Reminder, now time.Time) (time.Time, bool) {
	if !r.Enabled || r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
		return time.Time{}, false
	}
	if len(r.Days) > 0 && !slices.Contains(r.Days, now.Weekday()) {
		return time.Time{}, false
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, r.Hour, r.Minute, 0, 0, now.Location()), true
}

// ReminderDue reports whether r should fire at now: its slot for today has
// passed and it has not fired since.
func ReminderDue(r internal.Reminder, now time.Time) bool {
	at, ok := ScheduledAt(r, now)
	if !ok || now.Before(at) {
		return false
	}
	return r.LastFiredAt.Before(at)
}

func DueReminders(reminders []internal.Reminder, now time.Time) []internal.Reminder {
	due := make([]internal.Reminder, 0)
	for _, r := range reminders {
		if ReminderDue(r, now) {
			due = append(due, r)
		}
	}
	return due
}
