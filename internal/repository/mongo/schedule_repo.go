package mongo

import (
	"context"
	"errors"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	scheduleCollectionName         = "weekly_schedules"
	scheduleExerciseCollectionName = "schedule_exercises"
	scheduleMealCollectionName     = "schedule_meals"
)

// mongoScheduleRepository implements repository.ScheduleRepository
type mongoScheduleRepository struct {
	schedules *mongo.Collection
	exercises *mongo.Collection
	meals     *mongo.Collection
}

// NewMongoScheduleRepository creates a weekly schedule repository backed by MongoDB.
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	return &mongoScheduleRepository{
		schedules: db.Collection(scheduleCollectionName),
		exercises: db.Collection(scheduleExerciseCollectionName),
		meals:     db.Collection(scheduleMealCollectionName),
	}
}

// Create inserts a new weekly schedule. When the unique index on
// (traineeId, weekStartDate) rejects the insert, the typed
// repository.ErrAlreadyExists is returned so the caller can re-read the row
// the concurrent winner created.
func (r *mongoScheduleRepository) Create(ctx context.Context, schedule *domain.WeeklySchedule) (string, error) {
	if schedule.TraineeID == "" {
		return "", errors.New("trainee ID is required")
	}

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	schedule.CreatedAt = time.Now().UTC()

	_, err := r.schedules.InsertOne(ctx, schedule)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrAlreadyExists
		}
		return "", err
	}
	return schedule.ID, nil
}

// GetByTraineeAndWeek retrieves a schedule with its exercise and meal entries loaded.
func (r *mongoScheduleRepository) GetByTraineeAndWeek(ctx context.Context, traineeID string, weekStart time.Time) (*domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule
	filter := bson.M{"traineeId": traineeID, "weekStartDate": weekStart}

	err := r.schedules.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if schedule.Exercises, err = r.GetExercises(ctx, schedule.ID); err != nil {
		return nil, err
	}
	if schedule.Meals, err = r.GetMeals(ctx, schedule.ID); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// AddExercise inserts one exercise entry under a schedule. No dedup: calling
// twice with identical arguments creates two distinct entries.
func (r *mongoScheduleRepository) AddExercise(ctx context.Context, entry *domain.ScheduleExercise) (string, error) {
	if entry.ScheduleID == "" || entry.ExerciseID == "" {
		return "", errors.New("schedule ID and exercise ID are required")
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.ExercisePending
	}
	entry.CreatedAt = time.Now().UTC()

	_, err := r.exercises.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetExercises retrieves all exercise entries of a schedule in insertion order.
func (r *mongoScheduleRepository) GetExercises(ctx context.Context, scheduleID string) ([]domain.ScheduleExercise, error) {
	var entries []domain.ScheduleExercise
	filter := bson.M{"scheduleId": scheduleID}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.exercises.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetExerciseByID retrieves a single exercise entry.
func (r *mongoScheduleRepository) GetExerciseByID(ctx context.Context, entryID string) (*domain.ScheduleExercise, error) {
	var entry domain.ScheduleExercise
	err := r.exercises.FindOne(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateExercise rewrites the status fields of an exercise entry.
func (r *mongoScheduleRepository) UpdateExercise(ctx context.Context, entry *domain.ScheduleExercise) error {
	if entry.ID == "" {
		return errors.New("entry ID is required for update")
	}

	filter := bson.M{"_id": entry.ID}
	update := bson.M{
		"$set": bson.M{
			"status":      entry.Status,
			"completedAt": entry.CompletedAt,
		},
	}

	result, err := r.exercises.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveExercise hard-deletes an exercise entry. Deleting an id that no
// longer exists is a no-op, which keeps removal idempotent.
func (r *mongoScheduleRepository) RemoveExercise(ctx context.Context, entryID string) error {
	_, err := r.exercises.DeleteOne(ctx, bson.M{"_id": entryID})
	return err
}

// AddMeal inserts one meal entry under a schedule.
func (r *mongoScheduleRepository) AddMeal(ctx context.Context, entry *domain.ScheduleMeal) (string, error) {
	if entry.ScheduleID == "" || entry.MealID == "" {
		return "", errors.New("schedule ID and meal ID are required")
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()

	_, err := r.meals.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetMeals retrieves all meal entries of a schedule in insertion order.
func (r *mongoScheduleRepository) GetMeals(ctx context.Context, scheduleID string) ([]domain.ScheduleMeal, error) {
	var entries []domain.ScheduleMeal
	filter := bson.M{"scheduleId": scheduleID}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.meals.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveMeal hard-deletes a meal entry, idempotently.
func (r *mongoScheduleRepository) RemoveMeal(ctx context.Context, entryID string) error {
	_, err := r.meals.DeleteOne(ctx, bson.M{"_id": entryID})
	return err
}

// EnsureScheduleIndexes creates necessary indexes for the schedule collections.
func EnsureScheduleIndexes(ctx context.Context, db *mongo.Database) {
	scheduleIndexes := []mongo.IndexModel{
		{
			// At most one schedule per trainee per week. The race recovery in
			// the schedule service depends on this constraint.
			Keys:    bson.D{{Key: "traineeId", Value: 1}, {Key: "weekStartDate", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	childIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "scheduleId", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := db.Collection(scheduleCollectionName).Indexes().CreateMany(ctx, scheduleIndexes); err != nil {
		// log.Printf("WARN: Failed to create schedule indexes: %v", err)
	}
	if _, err := db.Collection(scheduleExerciseCollectionName).Indexes().CreateMany(ctx, childIndexes); err != nil {
		// log.Printf("WARN: Failed to create schedule exercise indexes: %v", err)
	}
	if _, err := db.Collection(scheduleMealCollectionName).Indexes().CreateMany(ctx, childIndexes); err != nil {
		// log.Printf("WARN: Failed to create schedule meal indexes: %v", err)
	}
}
