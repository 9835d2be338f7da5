// Package validate checks a generated dataset against the generator's invariants.
package validate

import (
	"fmt"
	"time"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/generator"
)

// Expectation describes the run that produced the records.
type Expectation struct {
	Users           int
	Days            int
	StartDate       time.Time
	MissingFraction float64
	OutlierFraction float64
}

// ExpectationFor derives an Expectation from generator parameters.
func ExpectationFor(p generator.Params) Expectation {
	return Expectation{
		Users:           p.Users,
		Days:            p.Days,
		StartDate:       p.StartDate,
		MissingFraction: p.MissingFraction,
		OutlierFraction: p.OutlierFraction,
	}
}

// Violation is a single broken invariant.
type Violation struct {
	Row     int // zero-based data row, -1 for table-level checks
	Rule    string
	Message string
}

func (v Violation) String() string {
	if v.Row < 0 {
		return fmt.Sprintf("%s: %s", v.Rule, v.Message)
	}
	return fmt.Sprintf("row %d: %s: %s", v.Row, v.Rule, v.Message)
}

// Report summarises a validation pass.
type Report struct {
	Rows         int
	Users        int
	MissingCells map[string]int
	// StepsAboveBound counts rows whose steps exceed the clip bound; only outlier scaling can cause this.
	StepsAboveBound int
	Violations      []Violation
}

// OK reports whether no invariant was violated.
func (r Report) OK() bool { return len(r.Violations) == 0 }

const maxViolations = 100

// Check validates records against exp.
func Check(records []domain.DailyRecord, exp Expectation) Report {
	c := checker{
		exp: exp,
		report: Report{
			Rows:         len(records),
			MissingCells: make(map[string]int, len(domain.MissingColumns)),
		},
	}
	c.checkShape(records)
	for i := range records {
		c.checkRow(i, &records[i])
	}
	c.checkMissingCounts()
	return c.report
}

type checker struct {
	exp    Expectation
	report Report
}

func (c *checker) fail(row int, rule, format string, args ...interface{}) {
	if len(c.report.Violations) >= maxViolations {
		return
	}
	c.report.Violations = append(c.report.Violations, Violation{Row: row, Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// checkShape verifies row count, user grouping, date sequence and static attributes.
func (c *checker) checkShape(records []domain.DailyRecord) {
	want := c.exp.Users * c.exp.Days
	if len(records) != want {
		c.fail(-1, "row_count", "got %d rows, want %d", len(records), want)
	}
	if c.exp.Days <= 0 {
		return
	}

	dates := generator.DateRange(c.exp.StartDate, c.exp.Days)
	seen := make(map[int]bool)
	for start := 0; start < len(records); start += c.exp.Days {
		first := records[start]
		if seen[first.UserID] {
			c.fail(start, "user_grouping", "user %d appears in more than one block", first.UserID)
		}
		seen[first.UserID] = true
		profile := first.Profile()

		for day := 0; day < c.exp.Days && start+day < len(records); day++ {
			idx := start + day
			rec := records[idx]
			if rec.UserID != first.UserID {
				c.fail(idx, "user_grouping", "user %d inside block of user %d", rec.UserID, first.UserID)
				continue
			}
			if !rec.Date.Equal(dates[day]) {
				c.fail(idx, "date_sequence", "date %s, want %s", rec.Date.Format(domain.DateLayout), dates[day].Format(domain.DateLayout))
			}
			if rec.Profile() != profile {
				c.fail(idx, "static_attributes", "attributes of user %d changed", rec.UserID)
			}
		}
	}
	c.report.Users = len(seen)
	if c.report.Users != c.exp.Users {
		c.fail(-1, "user_count", "got %d users, want %d", c.report.Users, c.exp.Users)
	}
}

func (c *checker) checkRow(i int, r *domain.DailyRecord) {
	for _, column := range domain.MissingColumns {
		if r.IsMissing(column) {
			c.report.MissingCells[column]++
		}
	}

	if r.Steps != nil {
		switch {
		case *r.Steps < domain.MinSteps:
			c.fail(i, "steps_bounds", "steps %d below %d", *r.Steps, domain.MinSteps)
		case *r.Steps > domain.MaxSteps:
			if *r.Steps > domain.MaxSteps*3 || *r.Steps%3 != 0 {
				c.fail(i, "steps_bounds", "steps %d cannot come from outlier scaling", *r.Steps)
			}
			c.report.StepsAboveBound++
		}
	}
	if !within(r.ActiveMinutes, domain.MinActiveMinutes, domain.MaxActiveMinutes) {
		c.fail(i, "active_minutes_bounds", "%v outside [%v,%v]", r.ActiveMinutes, domain.MinActiveMinutes, domain.MaxActiveMinutes)
	}
	if r.SleepHours != nil && !within(*r.SleepHours, domain.MinSleepHours, domain.MaxSleepHours) {
		c.fail(i, "sleep_hours_bounds", "%v outside [%v,%v]", *r.SleepHours, domain.MinSleepHours, domain.MaxSleepHours)
	}
	if r.WaterIntakeLiters != nil && !within(*r.WaterIntakeLiters, domain.MinWaterLiters, domain.MaxWaterLiters) {
		c.fail(i, "water_intake_bounds", "%v outside [%v,%v]", *r.WaterIntakeLiters, domain.MinWaterLiters, domain.MaxWaterLiters)
	}
	if !within(r.FitnessScore, domain.MinFitnessScore, domain.MaxFitnessScore) {
		c.fail(i, "fitness_score_bounds", "%v outside [%v,%v]", r.FitnessScore, domain.MinFitnessScore, domain.MaxFitnessScore)
	}
	if r.GoalAchieved != generator.GoalAchieved(r.FitnessScore) {
		c.fail(i, "goal_flag", "goal_achieved=%t with fitness_score %v", r.GoalAchieved, r.FitnessScore)
	}
}

func (c *checker) checkMissingCounts() {
	want := generator.SampleSize(c.exp.Users*c.exp.Days, c.exp.MissingFraction)
	for _, column := range domain.MissingColumns {
		if got := c.report.MissingCells[column]; got != want {
			c.fail(-1, "missing_count", "%s has %d missing cells, want %d", column, got, want)
		}
	}
	maxOutliers := generator.SampleSize(c.exp.Users*c.exp.Days, c.exp.OutlierFraction)
	if c.report.StepsAboveBound > maxOutliers {
		c.fail(-1, "outlier_count", "%d rows exceed the steps bound, at most %d outliers expected", c.report.StepsAboveBound, maxOutliers)
	}
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
