package domain

import "time"

// Meal represents a single meal definition in the coach's menu. Weekly meal
// schedules reference these by id.
type Meal struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Calories    int           `bson:"calories" json:"calories"`
	Timing      MealTiming    `bson:"timing,omitempty" json:"timing,omitempty"` // suggested slot
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      CatalogStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
