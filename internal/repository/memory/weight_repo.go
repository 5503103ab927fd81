package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitcoach/coaching-app/internal/domain"

	"github.com/google/uuid"
)

// WeightRepository is an in-memory repository.WeightRepository.
type WeightRepository struct {
	mu      sync.RWMutex
	records map[string][]domain.WeightRecord // trainee id -> records
}

// NewWeightRepository creates an empty in-memory weight store.
func NewWeightRepository() *WeightRepository {
	return &WeightRepository{records: make(map[string][]domain.WeightRecord)}
}

func (r *WeightRepository) Create(_ context.Context, record *domain.WeightRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now().UTC()

	r.records[record.TraineeID] = append(r.records[record.TraineeID], *record)
	return record.ID, nil
}

func (r *WeightRepository) GetByTraineeID(_ context.Context, traineeID string) ([]domain.WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.WeightRecord, len(r.records[traineeID]))
	copy(records, r.records[traineeID])
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}
