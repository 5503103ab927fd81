package domain

import "time"

// WeightRecord is one dated weigh-in. Submitting a record also refreshes the
// trainee profile's current weight.
type WeightRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	TraineeID string    `bson:"traineeId" json:"traineeId"`
	Weight    float64   `bson:"weight" json:"weight"`
	Date      time.Time `bson:"date" json:"date"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
