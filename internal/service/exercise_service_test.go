package service

import (
	"context"
	"testing"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseCatalogLifecycle(t *testing.T) {
	repo := memory.NewExerciseRepository()
	svc := NewExerciseService(repo)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, "Squat", "legs", 4, 10, "Back squat", "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.CatalogActive, created.Status)

	fetched, err := svc.GetExerciseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Squat", fetched.Name)

	updated, err := svc.UpdateExercise(ctx, created.ID, "Front Squat", "legs", 5, 8, "", "", domain.CatalogArchived)
	require.NoError(t, err)
	assert.Equal(t, "Front Squat", updated.Name)
	assert.Equal(t, domain.CatalogArchived, updated.Status)

	// Archived entries drop out of the active listing.
	active, err := svc.GetActiveExercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.DeleteExercise(ctx, created.ID))
	_, err = svc.GetExerciseByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestCreateExercise_Validation(t *testing.T) {
	svc := NewExerciseService(memory.NewExerciseRepository())
	ctx := context.Background()

	_, err := svc.CreateExercise(ctx, "", "legs", 3, 10, "", "")
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreateExercise(ctx, "Squat", "legs", 0, 10, "", "")
	require.ErrorIs(t, err, ErrInvalidSetsReps)
}

func TestDeleteExercise_Missing(t *testing.T) {
	svc := NewExerciseService(memory.NewExerciseRepository())

	err := svc.DeleteExercise(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestMealMenuLifecycle(t *testing.T) {
	repo := memory.NewMealRepository()
	svc := NewMealService(repo)
	ctx := context.Background()

	created, err := svc.CreateMeal(ctx, "Oatmeal", 350, domain.TimingBreakfast, "With berries")
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogActive, created.Status)

	updated, err := svc.UpdateMeal(ctx, created.ID, "Oatmeal", 320, domain.TimingBreakfast, "", domain.CatalogArchived)
	require.NoError(t, err)
	assert.Equal(t, 320, updated.Calories)

	active, err := svc.GetActiveMeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.CreateMeal(ctx, "Bad", -10, domain.TimingLunch, "")
	require.ErrorIs(t, err, ErrValidation)
}
