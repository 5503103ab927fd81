package service

import (
	"context"
	"errors"
	"fmt"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrTraineeNotFound = errors.New("trainee not found")
	ErrEmailTaken      = errors.New("email is already registered")
)

// RegisterTraineeInput carries the registration form fields.
type RegisterTraineeInput struct {
	Name          string
	Email         string
	Phone         string
	InitialWeight float64
	TargetWeight  float64
	Height        float64
	FatPercentage float64
	MuscleMass    float64
	Goals         []string
}

// --- Service Interface ---
type TraineeService interface {
	RegisterTrainee(ctx context.Context, input RegisterTraineeInput) (*domain.Trainee, error)
	GetTraineeByID(ctx context.Context, traineeID string) (*domain.Trainee, error)
	GetTrainees(ctx context.Context) ([]domain.Trainee, error)
	UpdateTrainee(ctx context.Context, trainee *domain.Trainee) (*domain.Trainee, error)
}

// --- Service Implementation ---

// traineeService implements the TraineeService interface.
type traineeService struct {
	traineeRepo repository.TraineeRepository
}

// NewTraineeService creates a new instance of traineeService.
func NewTraineeService(traineeRepo repository.TraineeRepository) TraineeService {
	return &traineeService{
		traineeRepo: traineeRepo,
	}
}

// RegisterTrainee creates a new trainee profile. The initial weight doubles
// as the starting current weight; it is captured here once and never
// rewritten by later profile updates, so weight deltas stay meaningful.
func (s *traineeService) RegisterTrainee(ctx context.Context, input RegisterTraineeInput) (*domain.Trainee, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if input.InitialWeight <= 0 {
		return nil, fmt.Errorf("%w: initial weight must be positive", ErrValidation)
	}

	trainee := &domain.Trainee{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		InitialWeight: input.InitialWeight,
		CurrentWeight: input.InitialWeight,
		TargetWeight:  input.TargetWeight,
		Height:        input.Height,
		FatPercentage: input.FatPercentage,
		MuscleMass:    input.MuscleMass,
		Goals:         input.Goals,
		Status:        domain.TraineePending,
	}

	traineeID, err := s.traineeRepo.Create(ctx, trainee)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	trainee.ID = traineeID
	return trainee, nil
}

// GetTraineeByID retrieves a single trainee profile.
func (s *traineeService) GetTraineeByID(ctx context.Context, traineeID string) (*domain.Trainee, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}

	trainee, err := s.traineeRepo.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTraineeNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// GetTrainees retrieves all trainee profiles.
func (s *traineeService) GetTrainees(ctx context.Context) ([]domain.Trainee, error) {
	return s.traineeRepo.GetAll(ctx)
}

// UpdateTrainee updates a trainee profile. Initial measurements are ignored
// by the repository update, so they cannot drift after registration.
func (s *traineeService) UpdateTrainee(ctx context.Context, trainee *domain.Trainee) (*domain.Trainee, error) {
	if _, err := uuid.Parse(trainee.ID); err != nil {
		return nil, ErrInvalidTraineeID
	}
	if trainee.Name == "" {
		return nil, ErrNameRequired
	}

	if trainee.Status == "" {
		existing, err := s.traineeRepo.GetByID(ctx, trainee.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTraineeNotFound
			}
			return nil, err
		}
		trainee.Status = existing.Status
	}

	if err := s.traineeRepo.Update(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTraineeNotFound
		}
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.traineeRepo.GetByID(ctx, trainee.ID)
}
