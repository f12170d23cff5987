package api

import (
	"time"

	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Store() storage.Store
	Now() time.Time
	WaterGoalML() float64
}

type app struct {
	logger      internal.Logger
	store       storage.Store
	clock       func() time.Time
	waterGoalML float64
}

// NewApp wires the handler dependencies. A nil clock means time.Now.
func NewApp(logger internal.Logger, store storage.Store, waterGoalML float64, clock func() time.Time) App {
	if clock == nil {
		clock = time.Now
	}
	return &app{logger: logger, store: store, clock: clock, waterGoalML: waterGoalML}
}

func (a *app) Logger() internal.Logger { return a.logger }
func (a *app) Store() storage.Store     { return a.store }
func (a *app) Now() time.Time           { return a.clock() }
func (a *app) WaterGoalML() float64     { return a.waterGoalML }
