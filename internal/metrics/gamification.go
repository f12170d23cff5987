package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/yourname/healthtracker/internal"
)

const (
	BadgeStepMaster    = "Step Master"
	BadgeSleepChampion = "Sleep Champion"
	BadgeJournalGuru   = "Journal Guru"
	BadgeHealthHero    = "Health Hero"

	ChallengeStepHero  = "Step Hero"
	ChallengeSleepStar = "Sleep Star"
)

const (
	pointsPerLevel      = 100
	stepsPerPoint       = 100
	pointsPerWorkout    = 5
	pointsPerSleepHour  = 10
	pointsPerJournal    = 20
	stepMasterSteps     = 10000
	sleepChampionHours  = 8.0
	journalGuruEntries  = 5
	healthHeroPoints    = 500
	stepHeroDailySteps  = 10000
	sleepStarDailyHours = 8.0
)

type Challenge struct {
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

type Gamification struct {
	Points        int         `json:"points"`
	Level         int         `json:"level"`
	XPInLevel     int         `json:"xp_in_level"`
	XPToNextLevel int         `json:"xp_to_next_level"`
	Badges        []string    `json:"badges"`
	Streak        int         `json:"streak"`
	Challenges    []Challenge `json:"challenges"`
}

// Points is floor(steps/100) + workouts×5 + floor(sleep hours×10) +
// journal entries×20, summed over the whole history.
func Points(health []internal.HealthEntry, journalCount int) int {
	steps, workouts, sleep := 0, 0, 0.0
	for _, h := range health {
		steps += max(h.Steps, 0)
		workouts += max(h.Workouts, 0)
		sleep += value(h.SleepHours)
	}
	return steps/stepsPerPoint +
		workouts*pointsPerWorkout +
		int(math.Floor(sleep*pointsPerSleepHour)) +
		max(journalCount, 0)*pointsPerJournal
}

func Level(points int) int {
	return max(points, 0) / pointsPerLevel
}

// Badges evaluates each threshold independently and returns the earned set
// sorted by name.
func Badges(health []internal.HealthEntry, journalCount, points int) []string {
	set := make(map[string]struct{})
	for _, h := range health {
		if h.Steps >= stepMasterSteps {
			set[BadgeStepMaster] = struct{}{}
		}
		if value(h.SleepHours) >= sleepChampionHours {
			set[BadgeSleepChampion] = struct{}{}
		}
	}
	if journalCount >= journalGuruEntries {
		set[BadgeJournalGuru] = struct{}{}
	}
	if points >= healthHeroPoints {
		set[BadgeHealthHero] = struct{}{}
	}
	badges := make([]string, 0, len(set))
	for b := range set {
		badges = append(badges, b)
	}
	sort.Strings(badges)
	return badges
}

// DailyChallenges only looks at entries logged on the day of now, so they
// start over every calendar day.
func DailyChallenges(health []internal.HealthEntry, now time.Time) []Challenge {
	steps, sleep := 0.0, 0.0
	for _, h := range health {
		if !sameDay(h.LoggedAt, now) {
			continue
		}
		steps += float64(max(h.Steps, 0))
		sleep += value(h.SleepHours)
	}
	return []Challenge{
		{Name: ChallengeStepHero, Target: stepHeroDailySteps, Progress: steps, Completed: steps >= stepHeroDailySteps},
		{Name: ChallengeSleepStar, Target: sleepStarDailyHours, Progress: round1(sleep), Completed: sleep >= sleepStarDailyHours},
	}
}

// Gamify recomputes the whole state from history. streak is passed through
// untouched.
func Gamify(health []internal.HealthEntry, journalCount, streak int, now time.Time) Gamification {
	points := Points(health, journalCount)
	return Gamification{
		Points:        points,
		Level:         Level(points),
		XPInLevel:     points % pointsPerLevel,
		XPToNextLevel: pointsPerLevel - points%pointsPerLevel,
		Badges:        Badges(health, journalCount, points),
		Streak:        streak,
		Challenges:    DailyChallenges(health, now),
	}
}
