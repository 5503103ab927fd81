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

// DefaultDailyStepTarget applies when config provides no target.
const DefaultDailyStepTarget = 3000

// --- Service Interface ---
type StepsService interface {
	// UpsertDailySteps records the step count for one date, one record per
	// (trainee, date): an update when the record exists, an insert otherwise.
	UpsertDailySteps(ctx context.Context, traineeID string, date time.Time, steps int) (*domain.StepRecord, error)

	// GetWeeklySteps returns the trailing 7-day step view ending at
	// referenceDate, zero-filled like the performance series.
	GetWeeklySteps(ctx context.Context, traineeID string, referenceDate time.Time) ([]domain.StepRecord, error)
}

// --- Service Implementation ---

// stepsService implements the StepsService interface.
type stepsService struct {
	stepsRepo   repository.StepsRepository
	dailyTarget int
}

// NewStepsService creates a new instance of stepsService.
func NewStepsService(stepsRepo repository.StepsRepository, dailyTarget int) StepsService {
	if dailyTarget <= 0 {
		dailyTarget = DefaultDailyStepTarget
	}
	return &stepsService{
		stepsRepo:   stepsRepo,
		dailyTarget: dailyTarget,
	}
}

func (s *stepsService) UpsertDailySteps(ctx context.Context, traineeID string, date time.Time, steps int) (*domain.StepRecord, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: step count cannot be negative", ErrValidation)
	}

	day := domain.DateOnly(date)

	existing, err := s.stepsRepo.GetByTraineeAndDate(ctx, traineeID, day)
	switch {
	case err == nil:
		existing.Steps = steps
		if err := s.stepsRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, repository.ErrNotFound):
		record := &domain.StepRecord{
			TraineeID:   traineeID,
			Date:        day,
			Steps:       steps,
			TargetSteps: s.dailyTarget,
		}
		recordID, err := s.stepsRepo.Create(ctx, record)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				// A concurrent upsert inserted the row between our read and
				// write. Last write wins: re-read and overwrite.
				return s.overwriteExisting(ctx, traineeID, day, steps)
			}
			return nil, err
		}
		record.ID = recordID
		return record, nil

	default:
		return nil, err
	}
}

func (s *stepsService) overwriteExisting(ctx context.Context, traineeID string, day time.Time, steps int) (*domain.StepRecord, error) {
	existing, err := s.stepsRepo.GetByTraineeAndDate(ctx, traineeID, day)
	if err != nil {
		return nil, err
	}
	existing.Steps = steps
	if err := s.stepsRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *stepsService) GetWeeklySteps(ctx context.Context, traineeID string, referenceDate time.Time) ([]domain.StepRecord, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}

	dates := domain.TrailingDates(referenceDate, 7)

	records, err := s.stepsRepo.GetByTraineeAndDates(ctx, traineeID, dates)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]domain.StepRecord, len(records))
	for _, record := range records {
		byDate[domain.DateOnly(record.Date)] = record
	}

	week := make([]domain.StepRecord, 0, len(dates))
	for _, date := range dates {
		if record, ok := byDate[date]; ok {
			week = append(week, record)
			continue
		}
		week = append(week, domain.StepRecord{
			TraineeID:   traineeID,
			Date:        date,
			Steps:       0,
			TargetSteps: s.dailyTarget,
		})
	}
	return week, nil
}
