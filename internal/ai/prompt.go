package ai

import (
	"encoding/json"
	"fmt"

	"alcyxob/fitness-ai/internal/domain"
)

// activityPromptTemplate names the exact JSON shape the analysis parser
// expects back. The key names (analysis.overall/pace/heartRate/caloriesBurned,
// improvements.area/recommendation, suggestions.workout/description, safety)
// are a contract with ParseAnalysis; change both together.
const activityPromptTemplate = `Analyze this fitness activity and provide detailed recommendation in the following EXACT JSON format:
{
  "analysis": {
     "overall": "Overall analysis here",
     "pace": "Pace analysis here",
     "heartRate": "Heart rate analysis here",
     "caloriesBurned": "Calories analysis here"
  },
  "improvements": [
     {
        "area": "Area Name",
        "recommendation": "Detailed recommendation"
     }
  ],
  "suggestions": [
     {
       "workout": "Workout name",
       "description": "Detailed workout description"
     }
  ],
  "safety": [
    "Safety point 1",
    "Safety point 2"
  ]
}
Analyze this activity:
Activity Type: %s
Duration: %d minutes
Calories Burned: %d
Additional Metrics: %s

Provide detailed analysis focusing on performance, improvements, next workout suggestions, and safety guidelines.
Ensure the response follows the EXACT JSON format shown above.
`

// BuildActivityPrompt renders a deterministic analysis prompt for an activity.
func BuildActivityPrompt(activity domain.Activity) string {
	return fmt.Sprintf(activityPromptTemplate,
		activity.Type,
		activity.Duration,
		activity.CaloriesBurned,
		renderMetrics(activity.AdditionalMetrics),
	)
}

// renderMetrics serializes the free-form metrics map. A nil map renders as the
// empty-object token, never as a null literal.
func renderMetrics(metrics map[string]interface{}) string {
	if len(metrics) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(metrics)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
