// Package events defines the payloads published for generated datasets.
package events

import "time"

// Event types carried in the event_type header.
const (
	TypeDailyRecordGenerated = "fitness.daily_record.generated"
	TypeDatasetGenerated     = "fitness.dataset.generated"
)

// DailyRecordGenerated carries one synthesized row. Missing cells are null.
type DailyRecordGenerated struct {
	RunID             string   `json:"run_id"`
	Date              string   `json:"date"`
	UserID            int      `json:"user_id"`
	Gender            string   `json:"gender"`
	Age               int      `json:"age"`
	HeightCM          float64  `json:"height_cm"`
	WeightKG          float64  `json:"weight_kg"`
	Steps             *int     `json:"steps"`
	ActiveMinutes     float64  `json:"active_minutes"`
	CaloriesBurned    float64  `json:"calories_burned"`
	RestingHeartRate  *float64 `json:"resting_heart_rate"`
	SleepHours        *float64 `json:"sleep_hours"`
	StressLevel       string   `json:"stress_level"`
	DietQuality       string   `json:"diet_quality"`
	WaterIntakeLiters *float64 `json:"water_intake_liters"`
	FitnessScore      float64  `json:"fitness_score"`
	WeightChangeKG    float64  `json:"weight_change_kg"`
	GoalAchieved      int      `json:"goal_achieved"`
}

// DatasetGenerated summarises a completed run once all of its records are published.
type DatasetGenerated struct {
	RunID        string         `json:"run_id"`
	Seed         int64          `json:"seed"`
	Users        int            `json:"users"`
	Days         int            `json:"days"`
	StartDate    string         `json:"start_date"`
	Rows         int            `json:"rows"`
	MissingCells map[string]int `json:"missing_cells"`
	OutlierRows  int            `json:"outlier_rows"`
	RecordsTopic string         `json:"records_topic"`
	GeneratedAt  time.Time      `json:"generated_at"`
}
