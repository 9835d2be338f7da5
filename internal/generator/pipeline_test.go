package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

func smallParams() Params {
	p := DefaultParams()
	p.Users = 20
	p.Days = 30
	return p
}

func TestGenerateTwoUsersThreeDays(t *testing.T) {
	p := DefaultParams()
	p.Users = 2
	p.Days = 3

	ds, err := Generate(p)
	require.NoError(t, err)
	require.Len(t, ds.Records, 6)

	perUser := map[int][]time.Time{}
	for _, r := range ds.Records {
		perUser[r.UserID] = append(perUser[r.UserID], r.Date)
	}
	require.Len(t, perUser, 2)

	want := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, id := range []int{1, 2} {
		require.Equal(t, want, perUser[id], "user %d", id)
	}

	// 5% and 1% of 6 rows both round to zero.
	for _, column := range domain.MissingColumns {
		require.Zero(t, ds.MissingCount(column))
	}
	require.Empty(t, ds.OutlierRows)
}

func TestGenerateRowsGroupedByUser(t *testing.T) {
	p := smallParams()
	ds, err := Generate(p)
	require.NoError(t, err)
	require.Len(t, ds.Records, p.Users*p.Days)

	for u := 0; u < p.Users; u++ {
		block := ds.Records[u*p.Days : (u+1)*p.Days]
		profile := ds.Profiles[u]
		require.Equal(t, u+1, profile.UserID)
		for d, r := range block {
			require.Equal(t, profile, r.Profile(), "user %d day %d", u+1, d)
			require.True(t, r.Date.Equal(ds.Dates[d]), "user %d day %d", u+1, d)
		}
	}
}

func TestGenerateFieldBounds(t *testing.T) {
	p := smallParams()
	ds, err := Generate(p)
	require.NoError(t, err)

	outliers := map[int]bool{}
	for _, idx := range ds.OutlierRows {
		outliers[idx] = true
	}

	for i, r := range ds.Records {
		require.GreaterOrEqual(t, r.Age, domain.MinAge)
		require.Less(t, r.Age, domain.MaxAge)
		require.Contains(t, []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}, r.Gender)
		require.Contains(t, []domain.StressLevel{domain.StressLow, domain.StressMedium, domain.StressHigh}, r.StressLevel)
		require.Contains(t, []domain.DietQuality{domain.DietPoor, domain.DietAverage, domain.DietGood}, r.DietQuality)

		if r.Steps != nil && !outliers[i] {
			require.GreaterOrEqual(t, *r.Steps, domain.MinSteps, "row %d", i)
			require.LessOrEqual(t, *r.Steps, domain.MaxSteps, "row %d", i)
		}
		require.GreaterOrEqual(t, r.ActiveMinutes, domain.MinActiveMinutes)
		require.LessOrEqual(t, r.ActiveMinutes, domain.MaxActiveMinutes)
		if r.SleepHours != nil {
			require.GreaterOrEqual(t, *r.SleepHours, domain.MinSleepHours)
			require.LessOrEqual(t, *r.SleepHours, domain.MaxSleepHours)
		}
		if r.WaterIntakeLiters != nil {
			require.GreaterOrEqual(t, *r.WaterIntakeLiters, domain.MinWaterLiters)
			require.LessOrEqual(t, *r.WaterIntakeLiters, domain.MaxWaterLiters)
		}
		require.GreaterOrEqual(t, r.FitnessScore, domain.MinFitnessScore)
		require.LessOrEqual(t, r.FitnessScore, domain.MaxFitnessScore)
		require.Equal(t, r.FitnessScore > 0.6, r.GoalAchieved, "row %d score %v", i, r.FitnessScore)
	}
}

func TestGenerateMissingCounts(t *testing.T) {
	p := smallParams()
	ds, err := Generate(p)
	require.NoError(t, err)

	want := SampleSize(p.Users*p.Days, p.MissingFraction)
	require.Equal(t, 30, want)

	for _, column := range domain.MissingColumns {
		require.Len(t, ds.MissingRows[column], want, column)
		blank := 0
		for _, r := range ds.Records {
			if r.IsMissing(column) {
				blank++
			}
		}
		require.Equal(t, want, blank, column)
	}
}

func TestGenerateOutliersShareRowsAcrossColumns(t *testing.T) {
	p := smallParams()
	withOutliers, err := Generate(p)
	require.NoError(t, err)

	// Outlier sampling is the last draw, so a zero fraction yields the pre-injection table.
	p.OutlierFraction = 0
	baseline, err := Generate(p)
	require.NoError(t, err)
	require.Empty(t, baseline.OutlierRows)

	require.Len(t, withOutliers.OutlierRows, SampleSize(len(withOutliers.Records), 0.01))

	outliers := map[int]bool{}
	for _, idx := range withOutliers.OutlierRows {
		outliers[idx] = true
	}

	for i := range withOutliers.Records {
		got, base := withOutliers.Records[i], baseline.Records[i]
		if outliers[i] {
			require.InDelta(t, base.CaloriesBurned*2, got.CaloriesBurned, 1e-9, "row %d", i)
			if base.Steps != nil {
				require.Equal(t, *base.Steps*3, *got.Steps, "row %d", i)
			} else {
				require.Nil(t, got.Steps)
			}
			continue
		}
		require.Equal(t, base.CaloriesBurned, got.CaloriesBurned, "row %d", i)
		require.Equal(t, base.Steps, got.Steps, "row %d", i)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := smallParams()
	first, err := Generate(p)
	require.NoError(t, err)
	second, err := Generate(p)
	require.NoError(t, err)
	require.Equal(t, first, second)

	p.Seed = 7
	other, err := Generate(p)
	require.NoError(t, err)
	require.NotEqual(t, first.Records, other.Records)
}

func TestParamsValidate(t *testing.T) {
	cases := map[string]func(*Params){
		"zero users":        func(p *Params) { p.Users = 0 },
		"negative days":     func(p *Params) { p.Days = -1 },
		"missing above one": func(p *Params) { p.MissingFraction = 1.5 },
		"negative outliers": func(p *Params) { p.OutlierFraction = -0.1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams()
			mutate(&p)
			_, err := Generate(p)
			require.ErrorIs(t, err, ErrInvalidParams)
		})
	}

	require.NoError(t, DefaultParams().Validate())
}
