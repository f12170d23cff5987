package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yourname/healthtracker/internal"
)

// FileStorage keeps every collection in memory and writes each one to its
// own JSON file in dataDir. Writes are debounced by a background worker and
// flushed synchronously on Close.
type FileStorage struct {
	users     map[string]*internal.User // token -> User
	health    *table[internal.HealthEntry]
	exercises *table[internal.ExerciseEntry]
	sleep     *table[internal.SleepEntry]
	water     *table[internal.WaterEntry]
	mood      *table[internal.MoodEntry]
	meals     *table[internal.MealEntry]
	journal   *table[internal.JournalEntry]
	goals     *table[internal.Goal]
	reminders *table[internal.Reminder]

	mu           sync.RWMutex
	dataDir      string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	doneChan     chan struct{}
	saveDelay    time.Duration
	logger       internal.Logger
}

const UsersFile = "users.json"

func NewFileStorage(dataDir string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		users: make(map[string]*internal.User),
		health: newTable("health_entries.json",
			func(e *internal.HealthEntry) (string, string, time.Time) { return e.ID, e.UserID, e.LoggedAt }),
		exercises: newTable("exercises.json",
			func(e *internal.ExerciseEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Date }),
		sleep: newTable("sleep_entries.json",
			func(e *internal.SleepEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Date }),
		water: newTable("water_entries.json",
			func(e *internal.WaterEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Timestamp }),
		mood: newTable("mood_entries.json",
			func(e *internal.MoodEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Date }),
		meals: newTable("meals.json",
			func(e *internal.MealEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Date }),
		journal: newTable("journal_entries.json",
			func(e *internal.JournalEntry) (string, string, time.Time) { return e.ID, e.UserID, e.Date }),
		goals: newTable("goals.json",
			func(g *internal.Goal) (string, string, time.Time) { return g.ID, g.UserID, g.CreatedAt }),
		reminders: newTable("reminders.json",
			func(r *internal.Reminder) (string, string, time.Time) { return r.ID, r.UserID, r.CreatedAt }),
		dataDir:      dataDir,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		doneChan:     make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("storage: failed to create data dir: %w", err)
	}
	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}
	for _, c := range s.collections() {
		if err := s.load(c); err != nil {
			logger.Errorf("storage: failed to load %s: %v", c.file(), err)
			return nil, err
		}
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStorage) collections() []collection {
	return []collection{s.health, s.exercises, s.sleep, s.water, s.mood, s.meals, s.journal, s.goals, s.reminders}
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(filepath.Join(s.dataDir, UsersFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, u := range users {
		s.users[u.Token] = u
	}
	return nil
}

func (s *FileStorage) load(c collection) error {
	file, err := os.Open(filepath.Join(s.dataDir, c.file()))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.load(file)
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

// flush writes every collection changed since the last flush.
func (s *FileStorage) flush() error {
	type pending struct {
		c    collection
		rows any
	}
	var dirty []pending
	s.mu.Lock()
	for _, c := range s.collections() {
		if rows, ok := c.takeDirty(); ok {
			dirty = append(dirty, pending{c: c, rows: rows})
		}
	}
	s.mu.Unlock()

	var errs []error
	for _, p := range dirty {
		if err := atomicWriteFileJSON(filepath.Join(s.dataDir, p.c.file()), p.rows); err != nil {
			s.mu.Lock()
			p.c.markDirty()
			s.mu.Unlock()
			errs = append(errs, fmt.Errorf("%s: %w", p.c.file(), err))
		}
	}
	return errors.Join(errs...)
}

func (s *FileStorage) scheduleSave() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

func (s *FileStorage) saveWorker() {
	defer close(s.doneChan)
	timer := time.NewTimer(s.saveDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.flush(); err != nil {
				s.logger.Errorf("storage: error saving data: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownChan)
	<-s.doneChan

	// Save pending data synchronously on shutdown
	return s.flush()
}

// --- UserRepository ---
func (s *FileStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[token]
	if !ok {
		return nil, internal.ErrNotFound
	}
	user := *u
	return &user, nil
}

// --- HealthRepository ---
func (s *FileStorage) SaveHealthEntry(ctx context.Context, entry *internal.HealthEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListHealthEntries(ctx context.Context, userID string) ([]internal.HealthEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health.list(userID), nil
}

func (s *FileStorage) DeleteHealthEntry(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.health.remove(userID, id) {
		return internal.ErrNotFound
	}
	s.scheduleSave()
	return nil
}

// --- ExerciseRepository ---
func (s *FileStorage) SaveExercise(ctx context.Context, entry *internal.ExerciseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListExercises(ctx context.Context, userID string) ([]internal.ExerciseEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exercises.list(userID), nil
}

// --- SleepRepository ---
func (s *FileStorage) SaveSleepEntry(ctx context.Context, entry *internal.SleepEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleep.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sleep.list(userID), nil
}

// --- WaterRepository ---
func (s *FileStorage) SaveWaterEntry(ctx context.Context, entry *internal.WaterEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.water.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListWaterEntries(ctx context.Context, userID string) ([]internal.WaterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.water.list(userID), nil
}

// --- MoodRepository ---
func (s *FileStorage) SaveMoodEntry(ctx context.Context, entry *internal.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mood.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListMoodEntries(ctx context.Context, userID string) ([]internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mood.list(userID), nil
}

// --- MealRepository ---
func (s *FileStorage) SaveMeal(ctx context.Context, entry *internal.MealEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListMeals(ctx context.Context, userID string) ([]internal.MealEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meals.list(userID), nil
}

// --- JournalRepository ---
func (s *FileStorage) SaveJournalEntry(ctx context.Context, entry *internal.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal.put(entry)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) CountJournalEntries(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.journal.byUser[userID]), nil
}

// --- GoalRepository ---
func (s *FileStorage) SetGoal(ctx context.Context, goal *internal.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals.byUser[goal.UserID] {
		if g.ID != goal.ID && g.Type == goal.Type && g.Frequency == goal.Frequency {
			s.goals.remove(g.UserID, g.ID)
			break
		}
	}
	s.goals.put(goal)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) ListGoals(ctx context.Context, userID string) ([]internal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals.list(userID), nil
}

// --- ReminderRepository ---
func (s *FileStorage) SaveReminder(ctx context.Context, reminder *internal.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders.put(reminder)
	s.scheduleSave()
	return nil
}

func (s *FileStorage) GetReminder(ctx context.Context, userID, id string) (*internal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reminders.rows[id]
	if !ok || r.UserID != userID {
		return nil, internal.ErrNotFound
	}
	reminder := *r
	return &reminder, nil
}

func (s *FileStorage) ListReminders(ctx context.Context, userID string) ([]internal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.list(userID), nil
}

// --- Compile-time assertions ---
var _ Store = (*FileStorage)(nil)
