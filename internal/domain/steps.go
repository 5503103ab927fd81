package domain

import "time"

// StepRecord is a trainee's step count for one calendar date, measured
// against a daily target. One record per (trainee, date).
type StepRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	TraineeID   string    `bson:"traineeId" json:"traineeId"`
	Date        time.Time `bson:"date" json:"date"`
	Steps       int       `bson:"steps" json:"steps"`
	TargetSteps int       `bson:"targetSteps" json:"targetSteps"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
