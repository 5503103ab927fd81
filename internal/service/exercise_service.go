package service

import (
	"context"
	"errors"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNameRequired     = errors.New("name is required")
)

// --- Service Interface ---
type ExerciseService interface {
	CreateExercise(ctx context.Context, name, category string, sets, reps int, description, videoURL string) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	GetActiveExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID, name, category string, sets, reps int, description, videoURL string, status domain.CatalogStatus) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise handles the creation of a new catalog exercise.
func (s *exerciseService) CreateExercise(ctx context.Context, name, category string, sets, reps int, description, videoURL string) (*domain.Exercise, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if sets <= 0 || reps <= 0 {
		return nil, ErrInvalidSetsReps
	}

	exercise := &domain.Exercise{
		Name:        name,
		Category:    category,
		Sets:        sets,
		Reps:        reps,
		Description: description,
		VideoURL:    videoURL,
		Status:      domain.CatalogActive,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = exerciseID
	return exercise, nil
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetActiveExercises retrieves all active catalog exercises.
func (s *exerciseService) GetActiveExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetActive(ctx)
}

// UpdateExercise handles updating an existing exercise.
func (s *exerciseService) UpdateExercise(ctx context.Context, exerciseID, name, category string, sets, reps int, description, videoURL string, status domain.CatalogStatus) (*domain.Exercise, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if sets <= 0 || reps <= 0 {
		return nil, ErrInvalidSetsReps
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	existing.Name = name
	existing.Category = category
	existing.Sets = sets
	existing.Reps = reps
	existing.Description = description
	existing.VideoURL = videoURL
	if status != "" {
		existing.Status = status
	}

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteExercise removes an exercise from the catalog.
func (s *exerciseService) DeleteExercise(ctx context.Context, exerciseID string) error {
	err := s.exerciseRepo.Delete(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
