package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is the structured analysis produced for a single activity.
// It is created once per pipeline run and never mutated afterwards; the
// Improvements, Suggestions and Safety lists are never empty (each falls back
// to a single canned sentence when the AI response carried no data).
type Recommendation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActivityID     string             `bson:"activityId" json:"activityId"`
	UserID         string             `bson:"userId" json:"userId"`
	ActivityType   ActivityType       `bson:"activityType" json:"activityType"`
	Recommendation string             `bson:"recommendation" json:"recommendation"`
	Improvements   []string           `bson:"improvements" json:"improvements"`
	Suggestions    []string           `bson:"suggestions" json:"suggestions"`
	Safety         []string           `bson:"safety" json:"safety"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
