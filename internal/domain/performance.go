package domain

import "time"

// DailyPerformance is a trainee's activity record for a single calendar date.
// At most one record exists per (trainee, date); subsequent reports for the
// same date update the existing record in place.
//
// ProgressValue is always derived from the two counts via the scorer and is
// never set independently.
type DailyPerformance struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	TraineeID          string    `bson:"traineeId" json:"traineeId"`
	Date               time.Time `bson:"date" json:"date"`
	CompletedExercises int       `bson:"completedExercises" json:"completedExercises"`
	CompletedMeals     int       `bson:"completedMeals" json:"completedMeals"`
	ProgressValue      int       `bson:"progressValue" json:"progressValue"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WeeklyPerformanceEntry is one day of the trailing-week view, tagged with
// the localized weekday name. Days without an underlying record are
// zero-filled.
type WeeklyPerformanceEntry struct {
	Day                string    `json:"day"`
	Date               time.Time `json:"date"`
	CompletedExercises int       `json:"completedExercises"`
	CompletedMeals     int       `json:"completedMeals"`
	ProgressValue      int       `json:"progressValue"`
}

// WeeklyPerformanceSeries is the derived 7-entry view of a trainee's trailing
// week, most recent date first. It is recomputed on every request, never
// stored.
type WeeklyPerformanceSeries struct {
	Entries []WeeklyPerformanceEntry `json:"entries"`
	// Peak is the entry with the highest progress value; ties go to the
	// earliest date.
	Peak WeeklyPerformanceEntry `json:"peak"`
}
