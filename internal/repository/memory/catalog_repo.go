package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// ExerciseRepository is an in-memory repository.ExerciseRepository.
type ExerciseRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Exercise
}

// NewExerciseRepository creates an empty in-memory exercise catalog.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{items: make(map[string]*domain.Exercise)}
}

func (r *ExerciseRepository) Create(_ context.Context, exercise *domain.Exercise) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if exercise.Status == "" {
		exercise.Status = domain.CatalogActive
	}
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	stored := *exercise
	r.items[exercise.ID] = &stored
	return exercise.ID, nil
}

func (r *ExerciseRepository) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercise, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *exercise
	return &out, nil
}

func (r *ExerciseRepository) GetActive(_ context.Context) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var exercises []domain.Exercise
	for _, exercise := range r.items {
		if exercise.Status == domain.CatalogActive {
			exercises = append(exercises, *exercise)
		}
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].CreatedAt.After(exercises[j].CreatedAt)
	})
	return exercises, nil
}

func (r *ExerciseRepository) Update(_ context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[exercise.ID]
	if !ok {
		return repository.ErrNotFound
	}
	created := stored.CreatedAt
	*stored = *exercise
	stored.CreatedAt = created
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *ExerciseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// MealRepository is an in-memory repository.MealRepository.
type MealRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Meal
}

// NewMealRepository creates an empty in-memory meal catalog.
func NewMealRepository() *MealRepository {
	return &MealRepository{items: make(map[string]*domain.Meal)}
}

func (r *MealRepository) Create(_ context.Context, meal *domain.Meal) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	if meal.Status == "" {
		meal.Status = domain.CatalogActive
	}
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	stored := *meal
	r.items[meal.ID] = &stored
	return meal.ID, nil
}

func (r *MealRepository) GetByID(_ context.Context, id string) (*domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *meal
	return &out, nil
}

func (r *MealRepository) GetActive(_ context.Context) ([]domain.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meals []domain.Meal
	for _, meal := range r.items {
		if meal.Status == domain.CatalogActive {
			meals = append(meals, *meal)
		}
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].CreatedAt.After(meals[j].CreatedAt)
	})
	return meals, nil
}

func (r *MealRepository) Update(_ context.Context, meal *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[meal.ID]
	if !ok {
		return repository.ErrNotFound
	}
	created := stored.CreatedAt
	*stored = *meal
	stored.CreatedAt = created
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MealRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
