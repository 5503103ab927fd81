package service

import (
	"context"
	"testing"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"
	"fitcoach/coaching-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSchedule_SameScheduleForWholeWeek(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	traineeID := uuid.NewString()
	wednesday := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	first, err := svc.GetOrCreateSchedule(ctx, traineeID, wednesday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), first.WeekStartDate)
	assert.Empty(t, first.Exercises)
	assert.Empty(t, first.Meals)

	// Any other day of the same week resolves to the same schedule.
	saturday := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	second, err := svc.GetOrCreateSchedule(ctx, traineeID, saturday)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A date in the next week provisions a fresh one.
	nextWeek, err := svc.GetOrCreateSchedule(ctx, traineeID, saturday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, nextWeek.ID)
}

func TestGetOrCreateSchedule_InvalidTraineeID(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	_, err := svc.GetOrCreateSchedule(context.Background(), "trainee-1", time.Now())
	require.ErrorIs(t, err, ErrInvalidTraineeID)
}

// racingScheduleRepo lets another creator win the first Create call.
type racingScheduleRepo struct {
	*memory.ScheduleRepository
	raced bool
}

func (r *racingScheduleRepo) Create(ctx context.Context, schedule *domain.WeeklySchedule) (string, error) {
	if !r.raced {
		r.raced = true
		rival := domain.WeeklySchedule{
			TraineeID:     schedule.TraineeID,
			WeekStartDate: schedule.WeekStartDate,
		}
		if _, err := r.ScheduleRepository.Create(ctx, &rival); err != nil {
			return "", err
		}
	}
	return r.ScheduleRepository.Create(ctx, schedule)
}

func TestGetOrCreateSchedule_CreationRaceReturnsWinner(t *testing.T) {
	repo := &racingScheduleRepo{ScheduleRepository: memory.NewScheduleRepository()}
	svc := NewScheduleService(repo)
	ctx := context.Background()

	traineeID := uuid.NewString()
	schedule, err := svc.GetOrCreateSchedule(ctx, traineeID, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, repo.raced)

	winner, err := repo.GetByTraineeAndWeek(ctx, traineeID, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, winner.ID, schedule.ID, "loser must surface the winner's schedule")
}

func TestAssignExercise(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	traineeID := uuid.NewString()
	schedule, err := svc.GetOrCreateSchedule(ctx, traineeID, time.Now().UTC())
	require.NoError(t, err)

	err = svc.AssignExercise(ctx, schedule.ID, uuid.NewString(), 2, 3, 12)
	require.NoError(t, err)

	entries, err := repo.GetExercises(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].DayOfWeek)
	assert.Equal(t, 3, entries[0].Sets)
	assert.Equal(t, 12, entries[0].Reps)
	assert.Equal(t, domain.ExercisePending, entries[0].Status)
	assert.Nil(t, entries[0].CompletedAt)
}

func TestAssignExercise_Validation(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()
	scheduleID := uuid.NewString()

	testCases := []struct {
		name    string
		day     int
		sets    int
		reps    int
		wantErr error
	}{
		{"day below range", -1, 3, 10, ErrInvalidDayOfWeek},
		{"day above range", 7, 3, 10, ErrInvalidDayOfWeek},
		{"zero sets", 2, 0, 10, ErrInvalidSetsReps},
		{"zero reps", 2, 3, 0, ErrInvalidSetsReps},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AssignExercise(ctx, scheduleID, uuid.NewString(), tc.day, tc.sets, tc.reps)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing may reach storage on rejected input.
	entries, err := repo.GetExercises(ctx, scheduleID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	err = svc.AssignExercise(ctx, "bad-id", uuid.NewString(), 2, 3, 10)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRemoveExercise_Idempotent(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	traineeID := uuid.NewString()
	schedule, err := svc.GetOrCreateSchedule(ctx, traineeID, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, svc.AssignExercise(ctx, schedule.ID, uuid.NewString(), 1, 3, 10))
	entries, err := repo.GetExercises(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entryID := entries[0].ID
	require.NoError(t, svc.RemoveExercise(ctx, entryID))
	require.NoError(t, svc.RemoveExercise(ctx, entryID), "second removal must be a no-op")
	require.NoError(t, svc.RemoveExercise(ctx, uuid.NewString()), "removing an unknown entry must be a no-op")

	entries, err = repo.GetExercises(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompleteExercise(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	schedule, err := svc.GetOrCreateSchedule(ctx, uuid.NewString(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.AssignExercise(ctx, schedule.ID, uuid.NewString(), 1, 3, 10))

	entries, err := repo.GetExercises(ctx, schedule.ID)
	require.NoError(t, err)
	entryID := entries[0].ID

	require.NoError(t, svc.CompleteExercise(ctx, entryID))

	entry, err := repo.GetExerciseByID(ctx, entryID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExerciseCompleted, entry.Status)
	require.NotNil(t, entry.CompletedAt)
	assert.WithinDuration(t, time.Now().UTC(), *entry.CompletedAt, time.Minute)

	err = svc.CompleteExercise(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrScheduleEntryNotFound)
}

func TestAssignMeal(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	schedule, err := svc.GetOrCreateSchedule(ctx, uuid.NewString(), time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, svc.AssignMeal(ctx, schedule.ID, uuid.NewString(), 4, domain.TimingLunch))

	meals, err := repo.GetMeals(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, domain.TimingLunch, meals[0].Timing)
	assert.Equal(t, 4, meals[0].DayOfWeek)

	err = svc.AssignMeal(ctx, schedule.ID, uuid.NewString(), 4, domain.MealTiming("brunch"))
	require.ErrorIs(t, err, ErrInvalidMealTiming)

	err = svc.AssignMeal(ctx, schedule.ID, uuid.NewString(), 9, domain.TimingDinner)
	require.ErrorIs(t, err, ErrInvalidDayOfWeek)
}

func TestRemoveMeal_Idempotent(t *testing.T) {
	repo := memory.NewScheduleRepository()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	schedule, err := svc.GetOrCreateSchedule(ctx, uuid.NewString(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.AssignMeal(ctx, schedule.ID, uuid.NewString(), 0, domain.TimingBreakfast))

	meals, err := repo.GetMeals(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)

	require.NoError(t, svc.RemoveMeal(ctx, meals[0].ID))
	require.NoError(t, svc.RemoveMeal(ctx, meals[0].ID))

	meals, err = repo.GetMeals(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestExercisesByDay(t *testing.T) {
	schedule := &domain.WeeklySchedule{
		Exercises: []domain.ScheduleExercise{
			{ID: "a", DayOfWeek: 1},
			{ID: "b", DayOfWeek: 3},
			{ID: "c", DayOfWeek: 1},
		},
		Meals: []domain.ScheduleMeal{
			{ID: "m1", DayOfWeek: 3, Timing: domain.TimingDinner},
		},
	}

	byDay := ExercisesByDay(schedule)
	require.Len(t, byDay, 2)
	require.Len(t, byDay[1], 2)
	assert.Equal(t, "a", byDay[1][0].ID, "within-day order must follow storage order")
	assert.Equal(t, "c", byDay[1][1].ID)
	assert.Equal(t, "b", byDay[3][0].ID)

	meals := MealsByDay(schedule)
	require.Len(t, meals[3], 1)
	assert.Equal(t, "m1", meals[3][0].ID)
}

// inconsistentRepo reports a duplicate on create but then loses the row.
type inconsistentRepo struct {
	repository.ScheduleRepository
}

func (r *inconsistentRepo) GetByTraineeAndWeek(context.Context, string, time.Time) (*domain.WeeklySchedule, error) {
	return nil, repository.ErrNotFound
}

func (r *inconsistentRepo) Create(context.Context, *domain.WeeklySchedule) (string, error) {
	return "", repository.ErrAlreadyExists
}

func TestGetOrCreateSchedule_InconsistentStore(t *testing.T) {
	svc := NewScheduleService(&inconsistentRepo{})

	_, err := svc.GetOrCreateSchedule(context.Background(), uuid.NewString(), time.Now())
	require.ErrorIs(t, err, ErrScheduleInconsistent)
}
