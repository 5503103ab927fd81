// internal/domain/exercise.go
package domain

import "time"

// CatalogStatus marks whether a catalog entry is offered to trainees.
type CatalogStatus string

const (
	CatalogActive   CatalogStatus = "active"
	CatalogArchived CatalogStatus = "archived"
)

// Exercise represents a single exercise definition in the coach's library.
// Weekly schedules reference these by id; the defaults for sets/reps are
// used when assigning the exercise to a day without overrides.
type Exercise struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"` // e.g. "chest", "legs", "back"
	Sets        int           `bson:"sets" json:"sets"`
	Reps        int           `bson:"reps" json:"reps"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL    string        `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Status      CatalogStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
