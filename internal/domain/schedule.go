package domain

import "time"

// ScheduleExerciseStatus tracks whether a scheduled exercise was performed.
type ScheduleExerciseStatus string

const (
	ExercisePending   ScheduleExerciseStatus = "pending"
	ExerciseCompleted ScheduleExerciseStatus = "completed"
	ExerciseSkipped   ScheduleExerciseStatus = "skipped"
)

// MealTiming identifies the meal slot within a day.
type MealTiming string

const (
	TimingBreakfast MealTiming = "breakfast"
	TimingLunch     MealTiming = "lunch"
	TimingDinner    MealTiming = "dinner"
	TimingSnack     MealTiming = "snack"
)

// WeeklySchedule is a trainee's plan for one calendar week, keyed by that
// week's Sunday. At most one schedule exists per (trainee, week start date);
// the storage layer enforces this with a unique index.
type WeeklySchedule struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	TraineeID     string    `bson:"traineeId" json:"traineeId"`
	WeekStartDate time.Time `bson:"weekStartDate" json:"weekStartDate"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`

	// Loaded child rows; not persisted on the schedule document itself.
	Exercises []ScheduleExercise `bson:"-" json:"exercises"`
	Meals     []ScheduleMeal     `bson:"-" json:"meals"`
}

// ScheduleExercise assigns a catalog exercise to one day of a weekly
// schedule. Several exercises may share a day; assigning the same exercise
// twice creates two distinct entries.
type ScheduleExercise struct {
	ID          string                 `bson:"_id,omitempty" json:"id"`
	ScheduleID  string                 `bson:"scheduleId" json:"scheduleId"`
	ExerciseID  string                 `bson:"exerciseId" json:"exerciseId"`
	DayOfWeek   int                    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Sets        int                    `bson:"sets" json:"sets"`
	Reps        int                    `bson:"reps" json:"reps"`
	Status      ScheduleExerciseStatus `bson:"status" json:"status"`
	CompletedAt *time.Time             `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
}

// ScheduleMeal assigns a catalog meal to a day and timing slot of a weekly
// schedule.
type ScheduleMeal struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	ScheduleID string     `bson:"scheduleId" json:"scheduleId"`
	MealID     string     `bson:"mealId" json:"mealId"`
	DayOfWeek  int        `bson:"dayOfWeek" json:"dayOfWeek"`
	Timing     MealTiming `bson:"timing" json:"timing"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
