package service

import (
	"context"
	"errors"
	"fmt"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"
)

var ErrMealNotFound = errors.New("meal not found")

// --- Service Interface ---
type MealService interface {
	CreateMeal(ctx context.Context, name string, calories int, timing domain.MealTiming, description string) (*domain.Meal, error)
	GetMealByID(ctx context.Context, mealID string) (*domain.Meal, error)
	GetActiveMeals(ctx context.Context) ([]domain.Meal, error)
	UpdateMeal(ctx context.Context, mealID, name string, calories int, timing domain.MealTiming, description string, status domain.CatalogStatus) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, mealID string) error
}

// --- Service Implementation ---

// mealService implements the MealService interface.
type mealService struct {
	mealRepo repository.MealRepository
}

// NewMealService creates a new instance of mealService.
func NewMealService(mealRepo repository.MealRepository) MealService {
	return &mealService{
		mealRepo: mealRepo,
	}
}

// CreateMeal handles the creation of a new menu meal.
func (s *mealService) CreateMeal(ctx context.Context, name string, calories int, timing domain.MealTiming, description string) (*domain.Meal, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if calories < 0 {
		return nil, fmt.Errorf("%w: calories cannot be negative", ErrValidation)
	}

	meal := &domain.Meal{
		Name:        name,
		Calories:    calories,
		Timing:      timing,
		Description: description,
		Status:      domain.CatalogActive,
	}

	mealID, err := s.mealRepo.Create(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = mealID
	return meal, nil
}

// GetMealByID retrieves a single meal.
func (s *mealService) GetMealByID(ctx context.Context, mealID string) (*domain.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

// GetActiveMeals retrieves all active menu meals.
func (s *mealService) GetActiveMeals(ctx context.Context) ([]domain.Meal, error) {
	return s.mealRepo.GetActive(ctx)
}

// UpdateMeal handles updating an existing meal.
func (s *mealService) UpdateMeal(ctx context.Context, mealID, name string, calories int, timing domain.MealTiming, description string, status domain.CatalogStatus) (*domain.Meal, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	existing.Name = name
	existing.Calories = calories
	existing.Timing = timing
	existing.Description = description
	if status != "" {
		existing.Status = status
	}

	if err := s.mealRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteMeal removes a meal from the menu.
func (s *mealService) DeleteMeal(ctx context.Context, mealID string) error {
	err := s.mealRepo.Delete(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	return nil
}
