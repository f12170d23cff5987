// Package metrics derives summary values from logged health records.
//
// Every function here is a pure transform over caller-supplied data: no
// storage access, no clock reads. Anything time dependent takes "now" as an
// argument. Missing or invalid numbers (negative, NaN, Inf) count as zero.
package metrics

import (
	"errors"
	"math"
	"time"
)

var (
	ErrUnknownActivity = errors.New("metrics: unknown activity")
	ErrInvalidDuration = errors.New("metrics: duration must be a positive number")
	ErrInvalidWeight   = errors.New("metrics: weight must be a positive number")
	ErrInvalidClock    = errors.New("metrics: time must be HH:MM")
)

const dayLayout = "2006-01-02"

// value returns v, or 0 when v is negative or not a finite number.
func value(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampPercent(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// window is the half-open range [from, to).
type window struct {
	from, to time.Time
}

// lastDays covers the n calendar days ending with the day of now.
func lastDays(now time.Time, n int) window {
	if n < 1 {
		n = 1
	}
	end := startOfDay(now).AddDate(0, 0, 1)
	return window{from: end.AddDate(0, 0, -n), to: end}
}

func (w window) contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(w.from.Location())
	return !t.Before(w.from) && t.Before(w.to)
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
