package memory

import (
	"context"
	"sync"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// StepsRepository is an in-memory repository.StepsRepository.
type StepsRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.StepRecord
	byKey map[string]string // (traineeId, date) -> record id
}

// NewStepsRepository creates an empty in-memory step store.
func NewStepsRepository() *StepsRepository {
	return &StepsRepository{
		byID:  make(map[string]*domain.StepRecord),
		byKey: make(map[string]string),
	}
}

func (r *StepsRepository) Create(_ context.Context, record *domain.StepRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dateKey(record.TraineeID, record.Date)
	if _, exists := r.byKey[key]; exists {
		return "", repository.ErrAlreadyExists
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	stored := *record
	r.byID[record.ID] = &stored
	r.byKey[key] = record.ID
	return record.ID, nil
}

func (r *StepsRepository) GetByTraineeAndDate(_ context.Context, traineeID string, date time.Time) (*domain.StepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[dateKey(traineeID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	record := *r.byID[id]
	return &record, nil
}

func (r *StepsRepository) GetByTraineeAndDates(_ context.Context, traineeID string, dates []time.Time) ([]domain.StepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []domain.StepRecord
	for _, date := range dates {
		if id, ok := r.byKey[dateKey(traineeID, date)]; ok {
			records = append(records, *r.byID[id])
		}
	}
	return records, nil
}

func (r *StepsRepository) Update(_ context.Context, record *domain.StepRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[record.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Steps = record.Steps
	stored.TargetSteps = record.TargetSteps
	stored.UpdatedAt = time.Now().UTC()
	return nil
}
