package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrInvalidDayOfWeek  = fmt.Errorf("%w: day of week must be between 0 (Sunday) and 6 (Saturday)", ErrValidation)
	ErrInvalidSetsReps   = fmt.Errorf("%w: sets and reps must be positive", ErrValidation)
	ErrInvalidMealTiming = fmt.Errorf("%w: unknown meal timing", ErrValidation)

	ErrScheduleEntryNotFound = errors.New("schedule entry not found")
	ErrScheduleInconsistent  = errors.New("schedule missing after duplicate-key signal")
)

// --- Service Interface ---

type ScheduleService interface {
	// GetOrCreateSchedule returns the trainee's schedule for the week
	// containing the given date, provisioning an empty one on first access.
	// Racing creators are resolved through the storage layer's unique
	// constraint: the loser re-reads and returns the winner's schedule.
	GetOrCreateSchedule(ctx context.Context, traineeID string, anyDateInWeek time.Time) (*domain.WeeklySchedule, error)

	AssignExercise(ctx context.Context, scheduleID, exerciseID string, dayOfWeek, sets, reps int) error
	RemoveExercise(ctx context.Context, entryID string) error
	CompleteExercise(ctx context.Context, entryID string) error

	AssignMeal(ctx context.Context, scheduleID, mealID string, dayOfWeek int, timing domain.MealTiming) error
	RemoveMeal(ctx context.Context, entryID string) error
}

// ExercisesByDay groups a schedule's loaded exercises by day of week,
// preserving the order the storage layer returned within each day.
func ExercisesByDay(schedule *domain.WeeklySchedule) map[int][]domain.ScheduleExercise {
	byDay := make(map[int][]domain.ScheduleExercise)
	for _, entry := range schedule.Exercises {
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}
	return byDay
}

// MealsByDay groups a schedule's loaded meals by day of week, preserving
// order within each day.
func MealsByDay(schedule *domain.WeeklySchedule) map[int][]domain.ScheduleMeal {
	byDay := make(map[int][]domain.ScheduleMeal)
	for _, entry := range schedule.Meals {
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}
	return byDay
}

// --- Service Implementation ---

// scheduleService implements the ScheduleService interface.
type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
	}
}

func (s *scheduleService) GetOrCreateSchedule(ctx context.Context, traineeID string, anyDateInWeek time.Time) (*domain.WeeklySchedule, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}

	weekStart := domain.WeekStart(anyDateInWeek)

	schedule, err := s.scheduleRepo.GetByTraineeAndWeek(ctx, traineeID, weekStart)
	if err == nil {
		return schedule, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	created := &domain.WeeklySchedule{
		TraineeID:     traineeID,
		WeekStartDate: weekStart,
	}
	if _, err := s.scheduleRepo.Create(ctx, created); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// A concurrent caller won the creation race. The unique index
			// guarantees exactly one row exists now, so re-read it instead
			// of surfacing the conflict.
			schedule, err = s.scheduleRepo.GetByTraineeAndWeek(ctx, traineeID, weekStart)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrScheduleInconsistent
				}
				return nil, err
			}
			return schedule, nil
		}
		return nil, err
	}
	created.Exercises = []domain.ScheduleExercise{}
	created.Meals = []domain.ScheduleMeal{}
	return created, nil
}

func (s *scheduleService) AssignExercise(ctx context.Context, scheduleID, exerciseID string, dayOfWeek, sets, reps int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	if sets <= 0 || reps <= 0 {
		return ErrInvalidSetsReps
	}
	if _, err := uuid.Parse(scheduleID); err != nil {
		return fmt.Errorf("%w: schedule id must be a valid UUID", ErrValidation)
	}
	if _, err := uuid.Parse(exerciseID); err != nil {
		return fmt.Errorf("%w: exercise id must be a valid UUID", ErrValidation)
	}

	entry := &domain.ScheduleExercise{
		ScheduleID: scheduleID,
		ExerciseID: exerciseID,
		DayOfWeek:  dayOfWeek,
		Sets:       sets,
		Reps:       reps,
		Status:     domain.ExercisePending,
	}
	_, err := s.scheduleRepo.AddExercise(ctx, entry)
	return err
}

func (s *scheduleService) RemoveExercise(ctx context.Context, entryID string) error {
	// Hard delete; removing an already-removed entry is a no-op.
	return s.scheduleRepo.RemoveExercise(ctx, entryID)
}

func (s *scheduleService) CompleteExercise(ctx context.Context, entryID string) error {
	entry, err := s.scheduleRepo.GetExerciseByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrScheduleEntryNotFound
		}
		return err
	}

	now := time.Now().UTC()
	entry.Status = domain.ExerciseCompleted
	entry.CompletedAt = &now
	return s.scheduleRepo.UpdateExercise(ctx, entry)
}

func (s *scheduleService) AssignMeal(ctx context.Context, scheduleID, mealID string, dayOfWeek int, timing domain.MealTiming) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	switch timing {
	case domain.TimingBreakfast, domain.TimingLunch, domain.TimingDinner, domain.TimingSnack:
	default:
		return ErrInvalidMealTiming
	}
	if _, err := uuid.Parse(scheduleID); err != nil {
		return fmt.Errorf("%w: schedule id must be a valid UUID", ErrValidation)
	}
	if _, err := uuid.Parse(mealID); err != nil {
		return fmt.Errorf("%w: meal id must be a valid UUID", ErrValidation)
	}

	entry := &domain.ScheduleMeal{
		ScheduleID: scheduleID,
		MealID:     mealID,
		DayOfWeek:  dayOfWeek,
		Timing:     timing,
	}
	_, err := s.scheduleRepo.AddMeal(ctx, entry)
	return err
}

func (s *scheduleService) RemoveMeal(ctx context.Context, entryID string) error {
	return s.scheduleRepo.RemoveMeal(ctx, entryID)
}
