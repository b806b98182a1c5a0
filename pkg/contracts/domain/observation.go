package domain

import (
	"sort"
	"time"
)

// Observation is one cleaned (province, date, price) data point. Prices in
// the long form are always present; missing cells are dropped during
// loading.
type Observation struct {
	Province string    `json:"province"`
	Date     time.Time `json:"date"`
	Price    int64     `json:"price"`
}

// LongTable is the long-form view of a price table: one row per observation,
// sorted ascending by date. It is immutable after construction; all methods
// return fresh slices.
type LongTable []Observation

// Provinces returns the unique province names in the table, sorted.
func (t LongTable) Provinces() []string {
	seen := make(map[string]bool)
	var names []string
	for _, obs := range t {
		if !seen[obs.Province] {
			seen[obs.Province] = true
			names = append(names, obs.Province)
		}
	}
	sort.Strings(names)
	return names
}

// Dates returns the unique observation dates in ascending order.
func (t LongTable) Dates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, obs := range t {
		if !seen[obs.Date] {
			seen[obs.Date] = true
			dates = append(dates, obs.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// FilterProvinces returns the observations belonging to the named provinces,
// preserving table order.
func (t LongTable) FilterProvinces(names []string) LongTable {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var filtered LongTable
	for _, obs := range t {
		if wanted[obs.Province] {
			filtered = append(filtered, obs)
		}
	}
	return filtered
}

// On returns the observations for a single date, ordered by price descending
// (the ordering used for per-date comparisons).
func (t LongTable) On(date time.Time) LongTable {
	var day LongTable
	for _, obs := range t {
		if obs.Date.Equal(date) {
			day = append(day, obs)
		}
	}
	sort.SliceStable(day, func(i, j int) bool { return day[i].Price > day[j].Price })
	return day
}

// Dataset bundles the two derived views produced by one load: the long-form
// observations and the transposed wide summary that feeds descriptive
// statistics.
type Dataset struct {
	Observations LongTable    `json:"observations"`
	Summary      SummaryTable `json:"summary"`
}
