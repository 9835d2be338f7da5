// Package generator synthesizes the longitudinal fitness cohort.
//
// Generation is a straight pipeline driven by one seeded Sampler: cohort
// attributes, temporal expansion, time-varying fields, missing-value injection,
// then outlier injection. Identical Params always produce an identical Dataset.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/observability"
)

// ErrInvalidParams is returned when generation parameters are out of range.
var ErrInvalidParams = errors.New("invalid generation parameters")

// Params controls a generation run.
type Params struct {
	Users           int
	Days            int
	StartDate       time.Time
	Seed            int64
	MissingFraction float64
	OutlierFraction float64
}

// DefaultParams returns the reference dataset configuration.
func DefaultParams() Params {
	return Params{
		Users:           200,
		Days:            180,
		StartDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Seed:            42,
		MissingFraction: 0.05,
		OutlierFraction: 0.01,
	}
}

// Validate checks the parameters before any randomness is consumed.
func (p Params) Validate() error {
	switch {
	case p.Users <= 0:
		return fmt.Errorf("%w: users must be positive, got %d", ErrInvalidParams, p.Users)
	case p.Days <= 0:
		return fmt.Errorf("%w: days must be positive, got %d", ErrInvalidParams, p.Days)
	case p.MissingFraction < 0 || p.MissingFraction > 1:
		return fmt.Errorf("%w: missing fraction %v outside [0,1]", ErrInvalidParams, p.MissingFraction)
	case p.OutlierFraction < 0 || p.OutlierFraction > 1:
		return fmt.Errorf("%w: outlier fraction %v outside [0,1]", ErrInvalidParams, p.OutlierFraction)
	}
	return nil
}

// Generate runs the full pipeline with a fresh sampler seeded from p.Seed.
func Generate(p Params) (*domain.Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := NewSampler(p.Seed)

	var profiles []domain.Profile
	timed("cohort", func() { profiles = GenerateCohort(s, p.Users) })

	var dates []time.Time
	var records []domain.DailyRecord
	timed("expand", func() {
		dates = DateRange(p.StartDate, p.Days)
		records = Expand(profiles, dates)
	})

	timed("synthesize", func() { Synthesize(s, records) })
	observability.RecordRowsGenerated(len(records))

	var missing map[string][]int
	var err error
	timed("missing", func() {
		missing, err = InjectMissing(s, records, domain.MissingColumns, p.MissingFraction)
	})
	if err != nil {
		return nil, fmt.Errorf("inject missing values: %w", err)
	}
	for _, column := range domain.MissingColumns {
		observability.RecordMissingInjected(column, len(missing[column]))
	}

	var outliers []int
	timed("outliers", func() { outliers = InjectOutliers(s, records, p.OutlierFraction) })
	observability.RecordOutliersInjected(len(outliers))

	return &domain.Dataset{
		Profiles:    profiles,
		Dates:       dates,
		Records:     records,
		MissingRows: missing,
		OutlierRows: outliers,
	}, nil
}

func timed(stage string, fn func()) {
	start := time.Now()
	fn()
	observability.ObserveStage(stage, time.Since(start))
}
