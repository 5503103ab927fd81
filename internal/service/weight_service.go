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

// --- Service Interface ---
type WeightService interface {
	// SubmitWeight stores a dated weigh-in and refreshes the trainee
	// profile's current weight.
	SubmitWeight(ctx context.Context, traineeID string, weight float64, notes string) (*domain.WeightRecord, error)

	// WeightHistory returns the trainee's weigh-ins, newest first.
	WeightHistory(ctx context.Context, traineeID string) ([]domain.WeightRecord, error)
}

// --- Service Implementation ---

// weightService implements the WeightService interface.
type weightService struct {
	weightRepo  repository.WeightRepository
	traineeRepo repository.TraineeRepository
}

// NewWeightService creates a new instance of weightService.
func NewWeightService(weightRepo repository.WeightRepository, traineeRepo repository.TraineeRepository) WeightService {
	return &weightService{
		weightRepo:  weightRepo,
		traineeRepo: traineeRepo,
	}
}

func (s *weightService) SubmitWeight(ctx context.Context, traineeID string, weight float64, notes string) (*domain.WeightRecord, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrValidation)
	}

	// The trainee must exist before any weigh-in is persisted, so an unknown
	// id never leaves an orphan record behind.
	if err := s.traineeRepo.UpdateCurrentWeight(ctx, traineeID, weight); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTraineeNotFound
		}
		return nil, err
	}

	record := &domain.WeightRecord{
		TraineeID: traineeID,
		Weight:    weight,
		Date:      domain.DateOnly(time.Now().UTC()),
		Notes:     notes,
	}

	recordID, err := s.weightRepo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID
	return record, nil
}

func (s *weightService) WeightHistory(ctx context.Context, traineeID string) ([]domain.WeightRecord, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}
	return s.weightRepo.GetByTraineeID(ctx, traineeID)
}
