// Package memory provides in-memory implementations of the repository
// interfaces. They back the local fallback mode selected at startup when no
// database is reachable, and double as lightweight fixtures in tests. The
// same uniqueness rules the MongoDB indexes enforce are enforced here.
package memory

import (
	"context"
	"sync"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

const dateKeyLayout = "2006-01-02"

func dateKey(traineeID string, date time.Time) string {
	return traineeID + "|" + date.Format(dateKeyLayout)
}

// PerformanceRepository is an in-memory repository.PerformanceRepository.
type PerformanceRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.DailyPerformance
	byKey map[string]string // (traineeId, date) -> record id
}

// NewPerformanceRepository creates an empty in-memory performance store.
func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{
		byID:  make(map[string]*domain.DailyPerformance),
		byKey: make(map[string]string),
	}
}

func (r *PerformanceRepository) Create(_ context.Context, record *domain.DailyPerformance) (string, error) {
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

func (r *PerformanceRepository) GetByTraineeAndDate(_ context.Context, traineeID string, date time.Time) (*domain.DailyPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[dateKey(traineeID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	record := *r.byID[id]
	return &record, nil
}

func (r *PerformanceRepository) GetByTraineeAndDates(_ context.Context, traineeID string, dates []time.Time) ([]domain.DailyPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []domain.DailyPerformance
	for _, date := range dates {
		if id, ok := r.byKey[dateKey(traineeID, date)]; ok {
			records = append(records, *r.byID[id])
		}
	}
	return records, nil
}

func (r *PerformanceRepository) Update(_ context.Context, record *domain.DailyPerformance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[record.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.CompletedExercises = record.CompletedExercises
	stored.CompletedMeals = record.CompletedMeals
	stored.ProgressValue = record.ProgressValue
	stored.UpdatedAt = time.Now().UTC()
	return nil
}
