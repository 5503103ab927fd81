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

// TraineeRepository is an in-memory repository.TraineeRepository.
type TraineeRepository struct {
	mu      sync.RWMutex
	items   map[string]*domain.Trainee
	byEmail map[string]string
}

// NewTraineeRepository creates an empty in-memory trainee store.
func NewTraineeRepository() *TraineeRepository {
	return &TraineeRepository{
		items:   make(map[string]*domain.Trainee),
		byEmail: make(map[string]string),
	}
}

func (r *TraineeRepository) Create(_ context.Context, trainee *domain.Trainee) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[trainee.Email]; exists {
		return "", repository.ErrAlreadyExists
	}

	if trainee.ID == "" {
		trainee.ID = uuid.NewString()
	}
	if trainee.Status == "" {
		trainee.Status = domain.TraineePending
	}
	now := time.Now().UTC()
	trainee.CreatedAt = now
	trainee.UpdatedAt = now

	stored := *trainee
	r.items[trainee.ID] = &stored
	r.byEmail[trainee.Email] = trainee.ID
	return trainee.ID, nil
}

func (r *TraineeRepository) GetByID(_ context.Context, id string) (*domain.Trainee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trainee, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *trainee
	return &out, nil
}

func (r *TraineeRepository) GetAll(_ context.Context) ([]domain.Trainee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trainees []domain.Trainee
	for _, trainee := range r.items {
		trainees = append(trainees, *trainee)
	}
	sort.Slice(trainees, func(i, j int) bool {
		return trainees[i].CreatedAt.After(trainees[j].CreatedAt)
	})
	return trainees, nil
}

func (r *TraineeRepository) Update(_ context.Context, trainee *domain.Trainee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[trainee.ID]
	if !ok {
		return repository.ErrNotFound
	}

	// Same unique-email rule the MongoDB index enforces.
	if owner, taken := r.byEmail[trainee.Email]; taken && owner != trainee.ID {
		return repository.ErrAlreadyExists
	}

	delete(r.byEmail, stored.Email)
	r.byEmail[trainee.Email] = trainee.ID

	stored.Name = trainee.Name
	stored.Email = trainee.Email
	stored.Phone = trainee.Phone
	stored.TargetWeight = trainee.TargetWeight
	stored.Height = trainee.Height
	stored.FatPercentage = trainee.FatPercentage
	stored.MuscleMass = trainee.MuscleMass
	stored.Goals = trainee.Goals
	stored.Status = trainee.Status
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *TraineeRepository) UpdateCurrentWeight(_ context.Context, id string, weight float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.CurrentWeight = weight
	stored.UpdatedAt = time.Now().UTC()
	return nil
}
