package domain

// ActivityType enumerates the supported activity categories.
// Values mirror what the activity tracking service emits.
type ActivityType string

const (
	ActivityRunning        ActivityType = "RUNNING"
	ActivityWalking        ActivityType = "WALKING"
	ActivityCycling        ActivityType = "CYCLING"
	ActivitySwimming       ActivityType = "SWIMMING"
	ActivityWeightTraining ActivityType = "WEIGHT_TRAINING"
	ActivityYoga           ActivityType = "YOGA"
	ActivityCardio         ActivityType = "CARDIO"
	ActivityOther          ActivityType = "OTHER"
)

// Activity is the recorded fitness activity the AI pipeline analyzes.
// It is owned by the activity service; this service never mutates it.
type Activity struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"userId"`
	Type              ActivityType           `json:"type"`
	Duration          int                    `json:"duration"` // minutes
	CaloriesBurned    int                    `json:"caloriesBurned"`
	AdditionalMetrics map[string]interface{} `json:"additionalMetrics,omitempty"`
}
