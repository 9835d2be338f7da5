package generator

import (
	"fmt"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

const (
	outlierStepsFactor    = 3
	outlierCaloriesFactor = 2.0
)

// InjectMissing blanks SampleSize(len(records), fraction) cells in each of the
// given columns. Rows are sampled independently per column, so one row may be
// blanked in several columns.
func InjectMissing(s *Sampler, records []domain.DailyRecord, columns []string, fraction float64) (map[string][]int, error) {
	k := SampleSize(len(records), fraction)
	blanked := make(map[string][]int, len(columns))
	for _, column := range columns {
		rows := s.SampleIndices(len(records), k)
		for _, idx := range rows {
			if err := blank(&records[idx], column); err != nil {
				return nil, err
			}
		}
		blanked[column] = rows
	}
	return blanked, nil
}

func blank(r *domain.DailyRecord, column string) error {
	switch column {
	case domain.ColumnSteps:
		r.Steps = nil
	case domain.ColumnSleepHours:
		r.SleepHours = nil
	case domain.ColumnWaterIntakeLiters:
		r.WaterIntakeLiters = nil
	case domain.ColumnRestingHeartRate:
		r.RestingHeartRate = nil
	default:
		return fmt.Errorf("column %q cannot hold missing values", column)
	}
	return nil
}

// InjectOutliers picks one shared set of SampleSize(len(records), fraction) rows
// and scales steps by 3 and calories by 2 on each. Missing steps stay missing.
// Scaled values may exceed the clip bounds.
func InjectOutliers(s *Sampler, records []domain.DailyRecord, fraction float64) []int {
	rows := s.SampleIndices(len(records), SampleSize(len(records), fraction))
	for _, idx := range rows {
		r := &records[idx]
		if r.Steps != nil {
			scaled := *r.Steps * outlierStepsFactor
			r.Steps = &scaled
		}
		r.CaloriesBurned *= outlierCaloriesFactor
	}
	return rows
}
