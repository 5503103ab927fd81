package repository

import (
	"context"
	"time"

	"fitcoach/coaching-app/internal/domain"
)

// Error constants for the repository layer. ErrAlreadyExists is the typed
// uniqueness-violation signal: callers check errors.Is against it instead of
// matching driver error strings.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrAlreadyExists = RepositoryError("already exists")
	ErrUpdateFailed  = RepositoryError("update failed")
	ErrDeleteFailed  = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PerformanceRepository stores daily activity records, unique per
// (trainee id, date).
type PerformanceRepository interface {
	Create(ctx context.Context, record *domain.DailyPerformance) (string, error)
	GetByTraineeAndDate(ctx context.Context, traineeID string, date time.Time) (*domain.DailyPerformance, error)
	GetByTraineeAndDates(ctx context.Context, traineeID string, dates []time.Time) ([]domain.DailyPerformance, error)
	Update(ctx context.Context, record *domain.DailyPerformance) error
}

// ScheduleRepository stores weekly schedules and their child rows. Create
// must return ErrAlreadyExists when the unique (trainee id, week start date)
// constraint is violated; the schedule service relies on that signal to
// recover from racing creators.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.WeeklySchedule) (string, error)
	GetByTraineeAndWeek(ctx context.Context, traineeID string, weekStart time.Time) (*domain.WeeklySchedule, error)
	AddExercise(ctx context.Context, entry *domain.ScheduleExercise) (string, error)
	GetExercises(ctx context.Context, scheduleID string) ([]domain.ScheduleExercise, error)
	GetExerciseByID(ctx context.Context, entryID string) (*domain.ScheduleExercise, error)
	UpdateExercise(ctx context.Context, entry *domain.ScheduleExercise) error
	RemoveExercise(ctx context.Context, entryID string) error
	AddMeal(ctx context.Context, entry *domain.ScheduleMeal) (string, error)
	GetMeals(ctx context.Context, scheduleID string) ([]domain.ScheduleMeal, error)
	RemoveMeal(ctx context.Context, entryID string) error
}

// ExerciseRepository stores the coach's exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	GetActive(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id string) error
}

// MealRepository stores the coach's meal catalog.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Meal, error)
	GetActive(ctx context.Context) ([]domain.Meal, error)
	Update(ctx context.Context, meal *domain.Meal) error
	Delete(ctx context.Context, id string) error
}

// TraineeRepository stores trainee profiles.
type TraineeRepository interface {
	Create(ctx context.Context, trainee *domain.Trainee) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Trainee, error)
	GetAll(ctx context.Context) ([]domain.Trainee, error)
	Update(ctx context.Context, trainee *domain.Trainee) error
	UpdateCurrentWeight(ctx context.Context, id string, weight float64) error
}

// WeightRepository stores dated weigh-ins.
type WeightRepository interface {
	Create(ctx context.Context, record *domain.WeightRecord) (string, error)
	GetByTraineeID(ctx context.Context, traineeID string) ([]domain.WeightRecord, error)
}

// StepsRepository stores daily step counts, unique per (trainee id, date).
type StepsRepository interface {
	Create(ctx context.Context, record *domain.StepRecord) (string, error)
	GetByTraineeAndDate(ctx context.Context, traineeID string, date time.Time) (*domain.StepRecord, error)
	GetByTraineeAndDates(ctx context.Context, traineeID string, dates []time.Time) ([]domain.StepRecord, error)
	Update(ctx context.Context, record *domain.StepRecord) error
}
