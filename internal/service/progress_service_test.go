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

func TestComputeDailyScore(t *testing.T) {
	testCases := []struct {
		name      string
		exercises int
		meals     int
		want      int
	}{
		{"nothing done", 0, 0, 0},
		{"full plan", 5, 3, 100},
		{"all exercises only", 5, 0, 60},
		{"all meals only", 0, 3, 40},
		{"partial day rounds half up", 3, 2, 63},
		{"one of each", 1, 1, 25},
		{"overshooting the plan is clamped", 9, 7, 100},
		{"exercises clamped independently", 9, 0, 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDailyScore(tc.exercises, tc.meals, DefaultMaxExercises, DefaultMaxMeals)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeDailyScore_MonotonicInExercises(t *testing.T) {
	prev := -1
	for exercises := 0; exercises <= 10; exercises++ {
		score := ComputeDailyScore(exercises, 1, DefaultMaxExercises, DefaultMaxMeals)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestComputeDailyScore_CustomTotals(t *testing.T) {
	// Planned totals of 4 exercises and 2 meals.
	assert.Equal(t, 100, ComputeDailyScore(4, 2, 4, 2))
	assert.Equal(t, 50, ComputeDailyScore(2, 1, 4, 2)) // half of each
}

func TestUpsertDailyPerformance_CreateThenUpdate(t *testing.T) {
	repo := memory.NewPerformanceRepository()
	svc := NewProgressService(repo, 0, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	day := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

	created, err := svc.UpsertDailyPerformance(ctx, traineeID, day, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 63, created.ProgressValue)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), created.Date, "time of day must be stripped")

	// Same date again replaces counts and rescores in place.
	updated, err := svc.UpsertDailyPerformance(ctx, traineeID, day, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 100, updated.ProgressValue)

	records, err := repo.GetByTraineeAndDates(ctx, traineeID, []time.Time{domain.DateOnly(day)})
	require.NoError(t, err)
	require.Len(t, records, 1, "one record per trainee and date")
	assert.Equal(t, 100, records[0].ProgressValue)
}

func TestUpsertDailyPerformance_Validation(t *testing.T) {
	repo := memory.NewPerformanceRepository()
	svc := NewProgressService(repo, 0, 0)
	ctx := context.Background()

	_, err := svc.UpsertDailyPerformance(ctx, "not-a-uuid", time.Now(), 1, 1)
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ErrInvalidTraineeID)

	_, err = svc.UpsertDailyPerformance(ctx, uuid.NewString(), time.Now(), -1, 1)
	require.ErrorIs(t, err, ErrNegativeCount)

	_, err = svc.UpsertDailyPerformance(ctx, uuid.NewString(), time.Now(), 1, -1)
	require.ErrorIs(t, err, ErrNegativeCount)
}

// racingCreateRepo simulates a concurrent upsert landing between the
// service's read and its insert.
type racingCreateRepo struct {
	*memory.PerformanceRepository
	raced bool
}

func (r *racingCreateRepo) Create(ctx context.Context, record *domain.DailyPerformance) (string, error) {
	if !r.raced {
		r.raced = true
		rival := *record
		rival.ID = ""
		rival.CompletedExercises = 1
		rival.CompletedMeals = 0
		rival.ProgressValue = 12
		if _, err := r.PerformanceRepository.Create(ctx, &rival); err != nil {
			return "", err
		}
	}
	return r.PerformanceRepository.Create(ctx, record)
}

func TestUpsertDailyPerformance_CreateRaceLastWriteWins(t *testing.T) {
	repo := &racingCreateRepo{PerformanceRepository: memory.NewPerformanceRepository()}
	svc := NewProgressService(repo, 0, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	record, err := svc.UpsertDailyPerformance(ctx, traineeID, day, 5, 3)
	require.NoError(t, err)
	assert.True(t, repo.raced)
	assert.Equal(t, 100, record.ProgressValue, "loser must overwrite the rival's record")

	stored, err := repo.GetByTraineeAndDate(ctx, traineeID, day)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.ProgressValue)
	assert.Equal(t, 5, stored.CompletedExercises)
}

func TestGetWeeklySeries_ZeroFilled(t *testing.T) {
	repo := memory.NewPerformanceRepository()
	svc := NewProgressService(repo, 0, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	ref := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC) // Wednesday

	_, err := svc.UpsertDailyPerformance(ctx, traineeID, ref, 3, 2)
	require.NoError(t, err)
	_, err = svc.UpsertDailyPerformance(ctx, traineeID, ref.AddDate(0, 0, -2), 5, 3)
	require.NoError(t, err)

	series, err := svc.GetWeeklySeries(ctx, traineeID, ref)
	require.NoError(t, err)
	require.Len(t, series.Entries, 7)

	assert.Equal(t, ref, series.Entries[0].Date)
	assert.Equal(t, ref.AddDate(0, 0, -6), series.Entries[6].Date)

	assert.Equal(t, 63, series.Entries[0].ProgressValue)
	assert.Equal(t, 100, series.Entries[2].ProgressValue)
	for _, i := range []int{1, 3, 4, 5, 6} {
		assert.Zero(t, series.Entries[i].ProgressValue, "day without a record must read as zero")
		assert.Zero(t, series.Entries[i].CompletedExercises)
	}

	// Weekday labels follow the calendar: the reference Wednesday first.
	assert.Equal(t, "الأربعاء", series.Entries[0].Day)
	assert.Equal(t, "الخميس", series.Entries[6].Day)
}

func TestGetWeeklySeries_PeakPrefersEarliestOnTie(t *testing.T) {
	repo := memory.NewPerformanceRepository()
	svc := NewProgressService(repo, 0, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	ref := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	earlier := ref.AddDate(0, 0, -4)

	_, err := svc.UpsertDailyPerformance(ctx, traineeID, earlier, 5, 3)
	require.NoError(t, err)
	_, err = svc.UpsertDailyPerformance(ctx, traineeID, ref, 5, 3)
	require.NoError(t, err)

	series, err := svc.GetWeeklySeries(ctx, traineeID, ref)
	require.NoError(t, err)
	assert.Equal(t, 100, series.Peak.ProgressValue)
	assert.Equal(t, earlier, series.Peak.Date, "tie must resolve to the earliest date")
}

func TestGetWeeklySeries_EmptyWeek(t *testing.T) {
	repo := memory.NewPerformanceRepository()
	svc := NewProgressService(repo, 0, 0)

	series, err := svc.GetWeeklySeries(context.Background(), uuid.NewString(), time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, series.Entries, 7)
	assert.Zero(t, series.Peak.ProgressValue)
	assert.Equal(t, series.Entries[6].Date, series.Peak.Date, "all-zero week peaks at the earliest day")
}

func TestGetWeeklySeries_InvalidTraineeID(t *testing.T) {
	svc := NewProgressService(memory.NewPerformanceRepository(), 0, 0)

	_, err := svc.GetWeeklySeries(context.Background(), "42", time.Now())
	require.ErrorIs(t, err, ErrInvalidTraineeID)
}

// failingRepo returns a fixed error from every method it implements.
type failingRepo struct {
	repository.PerformanceRepository
	err error
}

func (r *failingRepo) GetByTraineeAndDate(context.Context, string, time.Time) (*domain.DailyPerformance, error) {
	return nil, r.err
}

func TestUpsertDailyPerformance_StorageErrorPassesThrough(t *testing.T) {
	storageErr := assert.AnError
	svc := NewProgressService(&failingRepo{err: storageErr}, 0, 0)

	_, err := svc.UpsertDailyPerformance(context.Background(), uuid.NewString(), time.Now(), 1, 1)
	require.ErrorIs(t, err, storageErr)
}
