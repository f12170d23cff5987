package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/healthtracker/internal"
)

// PgConnection is the subset of *pgxpool.Pool the repositories use, so tests
// can substitute pgxmock.
type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type PostgresStorage struct {
	conn   PgConnection
	logger internal.Logger
}

func NewPostgresStorage(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	s, err := NewPostgresStorageWithConn(ctx, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func NewPostgresStorageWithConn(ctx context.Context, conn PgConnection, logger internal.Logger) (*PostgresStorage, error) {
	if err := conn.Ping(ctx); err != nil {
		logger.Errorf("failed to ping postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{conn: conn, logger: logger}, nil
}

func (p *PostgresStorage) Migrate(ctx context.Context) error {
	if _, err := p.conn.Exec(ctx, schemaSQL); err != nil {
		p.logger.Errorf("failed to apply schema: %v", err)
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.conn.Close()
	return nil
}

func (p *PostgresStorage) exec(ctx context.Context, what, sql string, args ...any) error {
	if _, err := p.conn.Exec(ctx, sql, args...); err != nil {
		p.logger.Errorf("failed to %s: %v", what, err)
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// collect runs a query and scans every row with scan.
func collect[T any](ctx context.Context, p *PostgresStorage, what, sql string, scan func(pgx.Rows, *T) error, args ...any) ([]T, error) {
	rows, err := p.conn.Query(ctx, sql, args...)
	if err != nil {
		p.logger.Errorf("failed to query %s: %v", what, err)
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			p.logger.Errorf("failed to scan %s: %v", what, err)
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		p.logger.Errorf("failed to read %s: %v", what, err)
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	return out, nil
}

// --- UserRepository ---
func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	row := p.conn.QueryRow(ctx, `SELECT id, token, name, weight_kg FROM users WHERE token = $1`, token)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name, &u.WeightKg); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		p.logger.Errorf("failed to look up user: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- HealthRepository ---
func (p *PostgresStorage) SaveHealthEntry(ctx context.Context, e *internal.HealthEntry) error {
	return p.exec(ctx, "insert health entry",
		`INSERT INTO health_entries (id, user_id, logged_at, steps, workouts, calories_burned, sleep_hours, hydration_level, mood_score, heart_rate, mental_health_score, activity_type) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.UserID, e.LoggedAt, e.Steps, e.Workouts, e.CaloriesBurned, e.SleepHours, e.HydrationLevel, e.MoodScore, e.HeartRate, e.MentalHealthScore, string(e.ActivityType))
}

func (p *PostgresStorage) ListHealthEntries(ctx context.Context, userID string) ([]internal.HealthEntry, error) {
	return collect(ctx, p, "health entries",
		`SELECT id, user_id, logged_at, steps, workouts, calories_burned, sleep_hours, hydration_level, mood_score, heart_rate, mental_health_score, activity_type FROM health_entries WHERE user_id = $1 ORDER BY logged_at DESC`,
		func(rows pgx.Rows, e *internal.HealthEntry) error {
			var activity string
			err := rows.Scan(&e.ID, &e.UserID, &e.LoggedAt, &e.Steps, &e.Workouts, &e.CaloriesBurned, &e.SleepHours, &e.HydrationLevel, &e.MoodScore, &e.HeartRate, &e.MentalHealthScore, &activity)
			e.ActivityType = internal.ActivityType(activity)
			return err
		}, userID)
}

func (p *PostgresStorage) DeleteHealthEntry(ctx context.Context, userID, id string) error {
	tag, err := p.conn.Exec(ctx, `DELETE FROM health_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete health entry: %v", err)
		return fmt.Errorf("delete health entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// --- ExerciseRepository ---
func (p *PostgresStorage) SaveExercise(ctx context.Context, e *internal.ExerciseEntry) error {
	return p.exec(ctx, "insert exercise",
		`INSERT INTO exercises (id, user_id, date, name, met, duration, calories_burned, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Date, e.Name, e.MET, e.Duration, e.CaloriesBurned, e.CreatedAt)
}

func (p *PostgresStorage) ListExercises(ctx context.Context, userID string) ([]internal.ExerciseEntry, error) {
	return collect(ctx, p, "exercises",
		`SELECT id, user_id, date, name, met, duration, calories_burned, created_at FROM exercises WHERE user_id = $1 ORDER BY date DESC`,
		func(rows pgx.Rows, e *internal.ExerciseEntry) error {
			return rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Name, &e.MET, &e.Duration, &e.CaloriesBurned, &e.CreatedAt)
		}, userID)
}

// --- SleepRepository ---
func (p *PostgresStorage) SaveSleepEntry(ctx context.Context, e *internal.SleepEntry) error {
	return p.exec(ctx, "insert sleep entry",
		`INSERT INTO sleep_entries (id, user_id, date, sleep_time, wake_time, duration, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.UserID, e.Date, e.SleepTime, e.WakeTime, e.Duration, e.CreatedAt)
}

func (p *PostgresStorage) ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error) {
	return collect(ctx, p, "sleep entries",
		`SELECT id, user_id, date, sleep_time, wake_time, duration, created_at FROM sleep_entries WHERE user_id = $1 ORDER BY date DESC`,
		func(rows pgx.Rows, e *internal.SleepEntry) error {
			return rows.Scan(&e.ID, &e.UserID, &e.Date, &e.SleepTime, &e.WakeTime, &e.Duration, &e.CreatedAt)
		}, userID)
}

// --- WaterRepository ---
func (p *PostgresStorage) SaveWaterEntry(ctx context.Context, e *internal.WaterEntry) error {
	return p.exec(ctx, "insert water entry",
		`INSERT INTO water_entries (id, user_id, date, amount, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.UserID, e.Date, e.Amount, e.Timestamp)
}

func (p *PostgresStorage) ListWaterEntries(ctx context.Context, userID string) ([]internal.WaterEntry, error) {
	return collect(ctx, p, "water entries",
		`SELECT id, user_id, date, amount, timestamp FROM water_entries WHERE user_id = $1 ORDER BY timestamp DESC`,
		func(rows pgx.Rows, e *internal.WaterEntry) error {
			return rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Amount, &e.Timestamp)
		}, userID)
}

// --- MoodRepository ---
func (p *PostgresStorage) SaveMoodEntry(ctx context.Context, e *internal.MoodEntry) error {
	return p.exec(ctx, "insert mood entry",
		`INSERT INTO mood_entries (id, user_id, date, mood, stress_level, notes) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Date, e.Mood, e.StressLevel, e.Notes)
}

func (p *PostgresStorage) ListMoodEntries(ctx context.Context, userID string) ([]internal.MoodEntry, error) {
	return collect(ctx, p, "mood entries",
		`SELECT id, user_id, date, mood, stress_level, notes FROM mood_entries WHERE user_id = $1 ORDER BY date DESC`,
		func(rows pgx.Rows, e *internal.MoodEntry) error {
			return rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Mood, &e.StressLevel, &e.Notes)
		}, userID)
}

// --- MealRepository ---
func (p *PostgresStorage) SaveMeal(ctx context.Context, e *internal.MealEntry) error {
	return p.exec(ctx, "insert meal",
		`INSERT INTO meals (id, user_id, date, name, calories, protein_g, carbs_g, fat_g, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.UserID, e.Date, e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.CreatedAt)
}

func (p *PostgresStorage) ListMeals(ctx context.Context, userID string) ([]internal.MealEntry, error) {
	return collect(ctx, p, "meals",
		`SELECT id, user_id, date, name, calories, protein_g, carbs_g, fat_g, created_at FROM meals WHERE user_id = $1 ORDER BY date DESC`,
		func(rows pgx.Rows, e *internal.MealEntry) error {
			return rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Name, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.CreatedAt)
		}, userID)
}

// --- JournalRepository ---
func (p *PostgresStorage) SaveJournalEntry(ctx context.Context, e *internal.JournalEntry) error {
	return p.exec(ctx, "insert journal entry",
		`INSERT INTO journal_entries (id, user_id, date, title, content, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Date, e.Title, e.Content, e.CreatedAt)
}

func (p *PostgresStorage) CountJournalEntries(ctx context.Context, userID string) (int, error) {
	var n int
	if err := p.conn.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`, userID).Scan(&n); err != nil {
		p.logger.Errorf("failed to count journal entries: %v", err)
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}

// --- GoalRepository ---
func (p *PostgresStorage) SetGoal(ctx context.Context, g *internal.Goal) error {
	return p.exec(ctx, "upsert goal",
		`INSERT INTO goals (id, user_id, type, target, frequency, created_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id, type, frequency) DO UPDATE SET id = EXCLUDED.id, target = EXCLUDED.target, created_at = EXCLUDED.created_at`,
		g.ID, g.UserID, string(g.Type), g.Target, string(g.Frequency), g.CreatedAt)
}

func (p *PostgresStorage) ListGoals(ctx context.Context, userID string) ([]internal.Goal, error) {
	return collect(ctx, p, "goals",
		`SELECT id, user_id, type, target, frequency, created_at FROM goals WHERE user_id = $1 ORDER BY created_at DESC`,
		func(rows pgx.Rows, g *internal.Goal) error {
			var goalType, freq string
			err := rows.Scan(&g.ID, &g.UserID, &goalType, &g.Target, &freq, &g.CreatedAt)
			g.Type, g.Frequency = internal.GoalType(goalType), internal.GoalFrequency(freq)
			return err
		}, userID)
}

// --- ReminderRepository ---
func (p *PostgresStorage) SaveReminder(ctx context.Context, r *internal.Reminder) error {
	return p.exec(ctx, "upsert reminder",
		`INSERT INTO reminders (id, user_id, title, days, hour, minute, enabled, last_fired_at, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, days = EXCLUDED.days, hour = EXCLUDED.hour, minute = EXCLUDED.minute, enabled = EXCLUDED.enabled, last_fired_at = EXCLUDED.last_fired_at`,
		r.ID, r.UserID, r.Title, weekdaysToInts(r.Days), r.Hour, r.Minute, r.Enabled, r.LastFiredAt, r.CreatedAt)
}

const reminderColumns = `id, user_id, title, days, hour, minute, enabled, last_fired_at, created_at`

func scanReminder(row pgx.Row, r *internal.Reminder) error {
	var days []int32
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &days, &r.Hour, &r.Minute, &r.Enabled, &r.LastFiredAt, &r.CreatedAt); err != nil {
		return err
	}
	r.Days = intsToWeekdays(days)
	return nil
}

func (p *PostgresStorage) GetReminder(ctx context.Context, userID, id string) (*internal.Reminder, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	var r internal.Reminder
	if err := scanReminder(row, &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		p.logger.Errorf("failed to get reminder: %v", err)
		return nil, err
	}
	return &r, nil
}

func (p *PostgresStorage) ListReminders(ctx context.Context, userID string) ([]internal.Reminder, error) {
	return collect(ctx, p, "reminders",
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 ORDER BY created_at DESC`,
		func(rows pgx.Rows, r *internal.Reminder) error { return scanReminder(rows, r) },
		userID)
}

func weekdaysToInts(days []time.Weekday) []int32 {
	out := make([]int32, len(days))
	for i, d := range days {
		out[i] = int32(d)
	}
	return out
}

func intsToWeekdays(days []int32) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]time.Weekday, len(days))
	for i, d := range days {
		out[i] = time.Weekday(d)
	}
	return out
}

// --- Compile-time assertions ---
var _ Store = (*PostgresStorage)(nil)
