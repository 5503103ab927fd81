package service

import (
	"context"
	"testing"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertDailySteps(t *testing.T) {
	repo := memory.NewStepsRepository()
	svc := NewStepsService(repo, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	day := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC)

	created, err := svc.UpsertDailySteps(ctx, traineeID, day, 2500)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 2500, created.Steps)
	assert.Equal(t, DefaultDailyStepTarget, created.TargetSteps)

	updated, err := svc.UpsertDailySteps(ctx, traineeID, day, 4100)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "same date must update in place")
	assert.Equal(t, 4100, updated.Steps)

	_, err = svc.UpsertDailySteps(ctx, traineeID, day, -5)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertDailySteps(ctx, "nope", day, 100)
	require.ErrorIs(t, err, ErrInvalidTraineeID)
}

// racingStepsRepo simulates a concurrent upsert landing between the
// service's read and its insert.
type racingStepsRepo struct {
	*memory.StepsRepository
	raced bool
}

func (r *racingStepsRepo) Create(ctx context.Context, record *domain.StepRecord) (string, error) {
	if !r.raced {
		r.raced = true
		rival := *record
		rival.ID = ""
		rival.Steps = 100
		if _, err := r.StepsRepository.Create(ctx, &rival); err != nil {
			return "", err
		}
	}
	return r.StepsRepository.Create(ctx, record)
}

func TestUpsertDailySteps_CreateRaceLastWriteWins(t *testing.T) {
	repo := &racingStepsRepo{StepsRepository: memory.NewStepsRepository()}
	svc := NewStepsService(repo, 0)
	ctx := context.Background()

	traineeID := uuid.NewString()
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	record, err := svc.UpsertDailySteps(ctx, traineeID, day, 4200)
	require.NoError(t, err)
	assert.True(t, repo.raced)
	assert.Equal(t, 4200, record.Steps, "loser must overwrite the rival's record")

	stored, err := repo.GetByTraineeAndDate(ctx, traineeID, day)
	require.NoError(t, err)
	assert.Equal(t, 4200, stored.Steps)
}

func TestGetWeeklySteps_ZeroFilled(t *testing.T) {
	repo := memory.NewStepsRepository()
	svc := NewStepsService(repo, 5000)
	ctx := context.Background()

	traineeID := uuid.NewString()
	ref := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	_, err := svc.UpsertDailySteps(ctx, traineeID, ref.AddDate(0, 0, -1), 6200)
	require.NoError(t, err)

	week, err := svc.GetWeeklySteps(ctx, traineeID, ref)
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, ref, week[0].Date)
	assert.Zero(t, week[0].Steps)
	assert.Equal(t, 6200, week[1].Steps)
	for _, record := range week {
		assert.Equal(t, 5000, record.TargetSteps, "filler days carry the configured target")
	}
}
