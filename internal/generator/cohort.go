package generator

import (
	"time"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
)

var (
	genders       = []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
	genderWeights = []float64{0.48, 0.48, 0.04}
)

const (
	heightMean = 170.0
	heightSD   = 10.0
	weightMean = 72.0
	weightSD   = 15.0
)

// GenerateCohort draws the static attributes of n users. Each attribute is drawn
// for the whole cohort before the next one.
func GenerateCohort(s *Sampler, n int) []domain.Profile {
	profiles := make([]domain.Profile, n)
	for i := range profiles {
		profiles[i].UserID = i + 1
		profiles[i].Gender = genders[s.Choice(genderWeights)]
	}
	for i := range profiles {
		profiles[i].Age = s.IntRange(domain.MinAge, domain.MaxAge)
	}
	for i := range profiles {
		profiles[i].HeightCM = s.Normal(heightMean, heightSD)
	}
	for i := range profiles {
		profiles[i].WeightKG = s.Normal(weightMean, weightSD)
	}
	return profiles
}

// DateRange returns days consecutive calendar dates beginning at start (UTC midnight).
func DateRange(start time.Time, days int) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

// Expand replicates every profile once per date. Rows stay grouped by user in
// profile order, with the same date sequence repeated for each user.
func Expand(profiles []domain.Profile, dates []time.Time) []domain.DailyRecord {
	records := make([]domain.DailyRecord, 0, len(profiles)*len(dates))
	for _, p := range profiles {
		for _, d := range dates {
			records = append(records, domain.DailyRecord{
				Date:     d,
				UserID:   p.UserID,
				Gender:   p.Gender,
				Age:      p.Age,
				HeightCM: p.HeightCM,
				WeightKG: p.WeightKG,
			})
		}
	}
	return records
}
