// Package domain defines the synthetic fitness dataset model.
package domain

import "time"

// Gender is the categorical gender attribute of a cohort member.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// StressLevel is the self-reported daily stress category.
type StressLevel string

const (
	StressLow    StressLevel = "Low"
	StressMedium StressLevel = "Medium"
	StressHigh   StressLevel = "High"
)

// DietQuality is the daily diet category.
type DietQuality string

const (
	DietPoor    DietQuality = "Poor"
	DietAverage DietQuality = "Average"
	DietGood    DietQuality = "Good"
)

// Column names in serialization order.
const (
	ColumnDate              = "date"
	ColumnUserID            = "user_id"
	ColumnGender            = "gender"
	ColumnAge               = "age"
	ColumnHeightCM          = "height_cm"
	ColumnWeightKG          = "weight_kg"
	ColumnSteps             = "steps"
	ColumnActiveMinutes     = "active_minutes"
	ColumnCaloriesBurned    = "calories_burned"
	ColumnRestingHeartRate  = "resting_heart_rate"
	ColumnSleepHours        = "sleep_hours"
	ColumnStressLevel       = "stress_level"
	ColumnDietQuality       = "diet_quality"
	ColumnWaterIntakeLiters = "water_intake_liters"
	ColumnFitnessScore      = "fitness_score"
	ColumnWeightChangeKG    = "weight_change_kg"
	ColumnGoalAchieved      = "goal_achieved"
)

// Columns is the header of the produced table.
var Columns = []string{
	ColumnDate,
	ColumnUserID,
	ColumnGender,
	ColumnAge,
	ColumnHeightCM,
	ColumnWeightKG,
	ColumnSteps,
	ColumnActiveMinutes,
	ColumnCaloriesBurned,
	ColumnRestingHeartRate,
	ColumnSleepHours,
	ColumnStressLevel,
	ColumnDietQuality,
	ColumnWaterIntakeLiters,
	ColumnFitnessScore,
	ColumnWeightChangeKG,
	ColumnGoalAchieved,
}

// MissingColumns lists the columns eligible for missing-value injection, in injection order.
var MissingColumns = []string{
	ColumnSteps,
	ColumnSleepHours,
	ColumnWaterIntakeLiters,
	ColumnRestingHeartRate,
}

// DateLayout is the on-disk representation of the date column.
const DateLayout = "2006-01-02"

// Field bounds applied immediately after sampling.
const (
	MinSteps         = 500
	MaxSteps         = 25000
	MinActiveMinutes = 5.0
	MaxActiveMinutes = 180.0
	MinSleepHours    = 3.0
	MaxSleepHours    = 10.0
	MinWaterLiters   = 0.5
	MaxWaterLiters   = 5.0
	MinFitnessScore  = 0.0
	MaxFitnessScore  = 1.0

	// GoalThreshold is exclusive: a score must be strictly greater to count.
	GoalThreshold = 0.6

	MinAge = 18
	MaxAge = 65 // exclusive
)

// Profile holds the static attributes drawn once per cohort member.
type Profile struct {
	UserID   int
	Gender   Gender
	Age      int
	HeightCM float64
	WeightKG float64
}

// DailyRecord is one row of the dataset. Nil pointers mark missing cells.
type DailyRecord struct {
	Date              time.Time
	UserID            int
	Gender            Gender
	Age               int
	HeightCM          float64
	WeightKG          float64
	Steps             *int
	ActiveMinutes     float64
	CaloriesBurned    float64
	RestingHeartRate  *float64
	SleepHours        *float64
	StressLevel       StressLevel
	DietQuality       DietQuality
	WaterIntakeLiters *float64
	FitnessScore      float64
	WeightChangeKG    float64
	GoalAchieved      bool
}

// Profile returns the static attributes carried by the record.
func (r DailyRecord) Profile() Profile {
	return Profile{
		UserID:   r.UserID,
		Gender:   r.Gender,
		Age:      r.Age,
		HeightCM: r.HeightCM,
		WeightKG: r.WeightKG,
	}
}

// IsMissing reports whether the named column is blank on this record.
// Columns that can never be missing always report false.
func (r DailyRecord) IsMissing(column string) bool {
	switch column {
	case ColumnSteps:
		return r.Steps == nil
	case ColumnSleepHours:
		return r.SleepHours == nil
	case ColumnWaterIntakeLiters:
		return r.WaterIntakeLiters == nil
	case ColumnRestingHeartRate:
		return r.RestingHeartRate == nil
	default:
		return false
	}
}
