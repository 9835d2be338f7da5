package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/generator"
)

func generated(t *testing.T) (generator.Params, *domain.Dataset) {
	t.Helper()
	p := generator.DefaultParams()
	p.Users = 25
	p.Days = 40
	ds, err := generator.Generate(p)
	require.NoError(t, err)
	return p, ds
}

func rules(r Report) []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Rule)
	}
	return out
}

func TestCheckAcceptsGeneratedDataset(t *testing.T) {
	p, ds := generated(t)

	report := Check(ds.Records, ExpectationFor(p))
	require.True(t, report.OK(), "violations: %v", report.Violations)
	require.Equal(t, 1000, report.Rows)
	require.Equal(t, 25, report.Users)
	for _, column := range domain.MissingColumns {
		require.Equal(t, 50, report.MissingCells[column], column)
	}
	require.LessOrEqual(t, report.StepsAboveBound, len(ds.OutlierRows))
}

func TestCheckDetectsRowCount(t *testing.T) {
	p, ds := generated(t)
	report := Check(ds.Records[:len(ds.Records)-1], ExpectationFor(p))
	require.False(t, report.OK())
	require.Contains(t, rules(report), "row_count")
}

func TestCheckDetectsBrokenGoalFlag(t *testing.T) {
	p, ds := generated(t)
	ds.Records[3].FitnessScore = 0.9
	ds.Records[3].GoalAchieved = false

	report := Check(ds.Records, ExpectationFor(p))
	require.Equal(t, []string{"goal_flag"}, rules(report))
	require.Equal(t, 3, report.Violations[0].Row)
}

func TestCheckDetectsStaticAttributeDrift(t *testing.T) {
	p, ds := generated(t)
	ds.Records[5].Age++

	report := Check(ds.Records, ExpectationFor(p))
	require.Equal(t, []string{"static_attributes"}, rules(report))
}

func TestCheckDetectsDateSequence(t *testing.T) {
	p, ds := generated(t)
	ds.Records[p.Days+1].Date = ds.Records[p.Days+1].Date.AddDate(0, 0, 1)

	report := Check(ds.Records, ExpectationFor(p))
	require.Equal(t, []string{"date_sequence"}, rules(report))
}

func TestCheckDetectsExtraMissingCells(t *testing.T) {
	p, ds := generated(t)
	for i := range ds.Records {
		if ds.Records[i].SleepHours != nil {
			ds.Records[i].SleepHours = nil
			break
		}
	}

	report := Check(ds.Records, ExpectationFor(p))
	require.Equal(t, []string{"missing_count"}, rules(report))
}

func TestCheckDetectsImpossibleSteps(t *testing.T) {
	p, ds := generated(t)
	for i := range ds.Records {
		if ds.Records[i].Steps != nil {
			bad := domain.MaxSteps + 1
			ds.Records[i].Steps = &bad
			break
		}
	}

	report := Check(ds.Records, ExpectationFor(p))
	require.Contains(t, rules(report), "steps_bounds")
}

func TestViolationString(t *testing.T) {
	require.Equal(t, "row_count: short", Violation{Row: -1, Rule: "row_count", Message: "short"}.String())
	require.Equal(t, "row 4: goal_flag: bad", Violation{Row: 4, Rule: "goal_flag", Message: "bad"}.String())
}
