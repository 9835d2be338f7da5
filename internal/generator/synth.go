package generator

import "github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"

var (
	stressLevels  = []domain.StressLevel{domain.StressLow, domain.StressMedium, domain.StressHigh}
	stressWeights = []float64{0.4, 0.4, 0.2}

	dietQualities = []domain.DietQuality{domain.DietPoor, domain.DietAverage, domain.DietGood}
	dietWeights   = []float64{0.25, 0.45, 0.30}
)

// Synthesize fills the time-varying fields of every record in place.
//
// Draws are taken column by column over all rows, in this order: steps,
// active-minutes noise, calorie noise, resting heart rate, sleep, stress, diet,
// water, fitness noise, weight-change noise. Derived fields always read the
// clipped values of their inputs.
func Synthesize(s *Sampler, records []domain.DailyRecord) {
	steps := make([]int, len(records))
	for i := range records {
		steps[i] = clipInt(int(s.Normal(7500, 3000)), domain.MinSteps, domain.MaxSteps)
		records[i].Steps = &steps[i]
	}

	for i := range records {
		active := float64(steps[i])/100 + s.Normal(0, 10)
		records[i].ActiveMinutes = clip(active, domain.MinActiveMinutes, domain.MaxActiveMinutes)
	}

	for i := range records {
		records[i].CaloriesBurned = float64(steps[i])*0.04 + records[i].ActiveMinutes*3 + s.Normal(0, 50)
	}

	heartRates := make([]float64, len(records))
	for i := range records {
		heartRates[i] = s.Normal(70, 8)
		records[i].RestingHeartRate = &heartRates[i]
	}

	sleep := make([]float64, len(records))
	for i := range records {
		sleep[i] = clip(s.Normal(7, 1.5), domain.MinSleepHours, domain.MaxSleepHours)
		records[i].SleepHours = &sleep[i]
	}

	for i := range records {
		records[i].StressLevel = stressLevels[s.Choice(stressWeights)]
	}
	for i := range records {
		records[i].DietQuality = dietQualities[s.Choice(dietWeights)]
	}

	water := make([]float64, len(records))
	for i := range records {
		water[i] = clip(s.Normal(2.2, 0.7), domain.MinWaterLiters, domain.MaxWaterLiters)
		records[i].WaterIntakeLiters = &water[i]
	}

	for i := range records {
		score := FitnessScore(steps[i], records[i].ActiveMinutes, sleep[i], heartRates[i]) + s.Normal(0, 0.2)
		records[i].FitnessScore = clip(score, domain.MinFitnessScore, domain.MaxFitnessScore)
		records[i].GoalAchieved = GoalAchieved(records[i].FitnessScore)
	}

	for i := range records {
		records[i].WeightChangeKG = s.Normal(0, 0.15) - (records[i].CaloriesBurned-2000)/10000
	}
}

// FitnessScore is the noise-free, unclipped composite score.
func FitnessScore(steps int, activeMinutes, sleepHours, restingHeartRate float64) float64 {
	return 0.3*(float64(steps)/10000) +
		0.3*(activeMinutes/60) +
		0.2*(sleepHours/8) -
		0.1*(restingHeartRate/100)
}

// GoalAchieved applies the strict goal threshold to a final fitness score.
func GoalAchieved(score float64) bool {
	return score > domain.GoalThreshold
}
