package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is the fully generated table together with what was injected into it.
type Dataset struct {
	Profiles []Profile
	Dates    []time.Time
	Records  []DailyRecord

	// MissingRows maps each missing-eligible column to the row indices blanked in it.
	MissingRows map[string][]int
	// OutlierRows are the row indices whose steps and calories were scaled.
	OutlierRows []int
}

// Users returns the cohort size.
func (d *Dataset) Users() int { return len(d.Profiles) }

// Days returns the number of days generated per user.
func (d *Dataset) Days() int { return len(d.Dates) }

// MissingCount returns the number of cells blanked in column.
func (d *Dataset) MissingCount(column string) int {
	return len(d.MissingRows[column])
}

// Run identifies one execution of the generator across every sink it writes to.
type Run struct {
	ID              string
	Seed            int64
	Users           int
	Days            int
	StartDate       time.Time
	MissingFraction float64
	OutlierFraction float64
	CreatedAt       time.Time
}

// NewRun stamps a run with a fresh identifier.
func NewRun(seed int64, users, days int, start time.Time, missing, outlier float64) Run {
	return Run{
		ID:              uuid.NewString(),
		Seed:            seed,
		Users:           users,
		Days:            days,
		StartDate:       start,
		MissingFraction: missing,
		OutlierFraction: outlier,
		CreatedAt:       time.Now().UTC(),
	}
}
