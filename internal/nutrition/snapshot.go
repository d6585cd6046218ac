/*
Package nutrition turns a user's stored profile, goals and consumption logs
into a per-request Snapshot that the chatbot renders into prompt context.
*/
package nutrition

import "time"

const (
	// TodayExcerptSize is how many of today's entries are kept for display.
	TodayExcerptSize = 5

	// PatternWindowDays is the look-back window of the eating pattern summary.
	PatternWindowDays = 7

	// PatternFetchLimit caps the rows read from the store for the window.
	PatternFetchLimit = 20

	// PatternExcerptSize is how many window entries are kept for display.
	PatternExcerptSize = 10
)

// Totals is the aggregate macro intake for one calendar day.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
}

// LogEntry is one consumption record joined with the minimal food projection.
// Contribution fields are nil when the store holds no value for them.
type LogEntry struct {
	ID              int64     `json:"id"`
	Barcode         string    `json:"barcode"`
	FoodName        string    `json:"food_name,omitempty"`
	CaloriesPer100g *float64  `json:"calories_per_100g,omitempty"`
	AmountConsumed  float64   `json:"amount_consumed"`
	ConsumedAt      time.Time `json:"consumed_at"`
	Date            string    `json:"date"` // YYYY-MM-DD

	Calories *float64 `json:"calculated_calories,omitempty"`
	Protein  *float64 `json:"calculated_protein,omitempty"`
	Carbs    *float64 `json:"calculated_carbs,omitempty"`
	Fat      *float64 `json:"calculated_fat,omitempty"`
	Sugar    *float64 `json:"calculated_sugar,omitempty"`
}

// UserSummary identifies the user inside the prompt.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile mirrors the onboarding answers. Nil pointers mean "not answered".
type Profile struct {
	Age           *int32   `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	BMI           *float64 `json:"bmi,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	GoalType      string   `json:"goal_type,omitempty"`
}

// DailyGoals are the per-day targets. A nil field has no target set.
type DailyGoals struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
}

// TodayConsumption carries totals over every entry of the day but only a
// short excerpt of the entries themselves.
type TodayConsumption struct {
	Totals   Totals     `json:"totals"`
	Logs     []LogEntry `json:"logs"`
	LogCount int        `json:"log_count"`
}

// RecentPatterns is the excerpt of the look-back window, newest first.
type RecentPatterns struct {
	Logs      []LogEntry `json:"logs"`
	TotalDays int        `json:"total_days"`
}

// Snapshot is the normalized nutrition state of one user for one request.
// Profile and DailyGoals are nil when the user has not set them up.
type Snapshot struct {
	User       UserSummary      `json:"user"`
	Profile    *Profile         `json:"profile"`
	DailyGoals *DailyGoals      `json:"daily_goals"`
	Today      TodayConsumption `json:"today_consumption"`
	Recent     RecentPatterns   `json:"recent_patterns"`
}
