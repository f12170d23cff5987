package metrics

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type Activity struct {
	Name string  `json:"name"`
	MET  float64 `json:"met"`
}

var metTable = []Activity{
	{Name: "Slow Walking", MET: 2.0},
	{Name: "Stretching", MET: 2.3},
	{Name: "Yoga", MET: 2.5},
	{Name: "Pilates", MET: 3.0},
	{Name: "Walking", MET: 3.5},
	{Name: "Weight Lifting", MET: 3.5},
	{Name: "Dancing", MET: 4.8},
	{Name: "Elliptical", MET: 5.0},
	{Name: "Hiking", MET: 6.0},
	{Name: "Basketball", MET: 6.5},
	{Name: "Rowing", MET: 7.0},
	{Name: "Aerobics", MET: 7.3},
	{Name: "Cycling", MET: 7.5},
	{Name: "Swimming", MET: 8.0},
	{Name: "Running", MET: 9.8},
	{Name: "Sprinting", MET: 11.2},
}

var metIndex = func() map[string]Activity {
	idx := make(map[string]Activity, len(metTable))
	for _, a := range metTable {
		idx[strings.ToLower(a.Name)] = a
	}
	return idx
}()

// Activities returns the MET table sorted by name.
func Activities() []Activity {
	out := make([]Activity, len(metTable))
	copy(out, metTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupMET resolves an activity label, ignoring case and surrounding space.
func LookupMET(name string) (Activity, error) {
	a, ok := metIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Activity{}, ErrUnknownActivity
	}
	return a, nil
}

// ParseDuration parses a minutes value typed by a user.
func ParseDuration(s string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !positive(d) {
		return 0, ErrInvalidDuration
	}
	return d, nil
}

// EstimateCalories returns round(met × weightKg × minutes/60).
func EstimateCalories(activity string, minutes, weightKg float64) (int, error) {
	a, err := LookupMET(activity)
	if err != nil {
		return 0, err
	}
	return CaloriesForMET(a.MET, minutes, weightKg)
}

func CaloriesForMET(met, minutes, weightKg float64) (int, error) {
	if !positive(minutes) {
		return 0, ErrInvalidDuration
	}
	if !positive(weightKg) {
		return 0, ErrInvalidWeight
	}
	return int(math.Round(value(met) * weightKg * minutes / 60)), nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
