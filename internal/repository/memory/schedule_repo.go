package memory

import (
	"context"
	"sync"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

func weekKey(traineeID string, weekStart time.Time) string {
	return traineeID + "|" + weekStart.Format(dateKeyLayout)
}

// ScheduleRepository is an in-memory repository.ScheduleRepository. The
// (trainee, week start) uniqueness rule is enforced under the lock, so a
// losing concurrent Create observes the same ErrAlreadyExists signal the
// MongoDB unique index would produce.
type ScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]*domain.WeeklySchedule
	byWeek    map[string]string // (traineeId, weekStart) -> schedule id
	exercises map[string]*domain.ScheduleExercise
	meals     map[string]*domain.ScheduleMeal
	// insertion order of child ids per schedule
	exerciseOrder map[string][]string
	mealOrder     map[string][]string
}

// NewScheduleRepository creates an empty in-memory schedule store.
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		schedules:     make(map[string]*domain.WeeklySchedule),
		byWeek:        make(map[string]string),
		exercises:     make(map[string]*domain.ScheduleExercise),
		meals:         make(map[string]*domain.ScheduleMeal),
		exerciseOrder: make(map[string][]string),
		mealOrder:     make(map[string][]string),
	}
}

func (r *ScheduleRepository) Create(_ context.Context, schedule *domain.WeeklySchedule) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := weekKey(schedule.TraineeID, schedule.WeekStartDate)
	if _, exists := r.byWeek[key]; exists {
		return "", repository.ErrAlreadyExists
	}

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	schedule.CreatedAt = time.Now().UTC()

	stored := *schedule
	stored.Exercises = nil
	stored.Meals = nil
	r.schedules[schedule.ID] = &stored
	r.byWeek[key] = schedule.ID
	return schedule.ID, nil
}

func (r *ScheduleRepository) GetByTraineeAndWeek(_ context.Context, traineeID string, weekStart time.Time) (*domain.WeeklySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byWeek[weekKey(traineeID, weekStart)]
	if !ok {
		return nil, repository.ErrNotFound
	}

	schedule := *r.schedules[id]
	schedule.Exercises = r.exercisesLocked(id)
	schedule.Meals = r.mealsLocked(id)
	return &schedule, nil
}

func (r *ScheduleRepository) AddExercise(_ context.Context, entry *domain.ScheduleExercise) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.ExercisePending
	}
	entry.CreatedAt = time.Now().UTC()

	stored := *entry
	r.exercises[entry.ID] = &stored
	r.exerciseOrder[entry.ScheduleID] = append(r.exerciseOrder[entry.ScheduleID], entry.ID)
	return entry.ID, nil
}

func (r *ScheduleRepository) GetExercises(_ context.Context, scheduleID string) ([]domain.ScheduleExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exercisesLocked(scheduleID), nil
}

func (r *ScheduleRepository) GetExerciseByID(_ context.Context, entryID string) (*domain.ScheduleExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.exercises[entryID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *entry
	return &out, nil
}

func (r *ScheduleRepository) UpdateExercise(_ context.Context, entry *domain.ScheduleExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.exercises[entry.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = entry.Status
	stored.CompletedAt = entry.CompletedAt
	return nil
}

func (r *ScheduleRepository) RemoveExercise(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.exercises[entryID]
	if !ok {
		// Idempotent delete: removing a missing entry is not an error.
		return nil
	}
	delete(r.exercises, entryID)
	r.exerciseOrder[entry.ScheduleID] = removeID(r.exerciseOrder[entry.ScheduleID], entryID)
	return nil
}

func (r *ScheduleRepository) AddMeal(_ context.Context, entry *domain.ScheduleMeal) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()

	stored := *entry
	r.meals[entry.ID] = &stored
	r.mealOrder[entry.ScheduleID] = append(r.mealOrder[entry.ScheduleID], entry.ID)
	return entry.ID, nil
}

func (r *ScheduleRepository) GetMeals(_ context.Context, scheduleID string) ([]domain.ScheduleMeal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mealsLocked(scheduleID), nil
}

func (r *ScheduleRepository) RemoveMeal(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.meals[entryID]
	if !ok {
		return nil
	}
	delete(r.meals, entryID)
	r.mealOrder[entry.ScheduleID] = removeID(r.mealOrder[entry.ScheduleID], entryID)
	return nil
}

func (r *ScheduleRepository) exercisesLocked(scheduleID string) []domain.ScheduleExercise {
	var entries []domain.ScheduleExercise
	for _, id := range r.exerciseOrder[scheduleID] {
		entries = append(entries, *r.exercises[id])
	}
	return entries
}

func (r *ScheduleRepository) mealsLocked(scheduleID string) []domain.ScheduleMeal {
	var entries []domain.ScheduleMeal
	for _, id := range r.mealOrder[scheduleID] {
		entries = append(entries, *r.meals[id])
	}
	return entries
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
