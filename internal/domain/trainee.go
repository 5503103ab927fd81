package domain

import "time"

// TraineeStatus tracks the trainee's membership state.
type TraineeStatus string

const (
	TraineeActive   TraineeStatus = "active"
	TraineePending  TraineeStatus = "pending"
	TraineeInactive TraineeStatus = "inactive"
)

// Trainee is the profile of an end user whose activity and schedules are
// tracked. Initial body measurements are captured once at registration and
// are never rewritten afterwards, so progress deltas stay meaningful.
type Trainee struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	Phone         string        `bson:"phone,omitempty" json:"phone,omitempty"`
	InitialWeight float64       `bson:"initialWeight" json:"initialWeight"`
	CurrentWeight float64       `bson:"currentWeight" json:"currentWeight"`
	TargetWeight  float64       `bson:"targetWeight,omitempty" json:"targetWeight,omitempty"`
	Height        float64       `bson:"height,omitempty" json:"height,omitempty"`
	FatPercentage float64       `bson:"fatPercentage,omitempty" json:"fatPercentage,omitempty"`
	MuscleMass    float64       `bson:"muscleMass,omitempty" json:"muscleMass,omitempty"`
	Goals         []string      `bson:"goals,omitempty" json:"goals,omitempty"`
	Status        TraineeStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
