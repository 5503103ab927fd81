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

const performanceCollectionName = "trainee_performance"

// mongoPerformanceRepository implements repository.PerformanceRepository
type mongoPerformanceRepository struct {
	collection *mongo.Collection
}

// NewMongoPerformanceRepository creates a daily performance repository backed by MongoDB.
func NewMongoPerformanceRepository(db *mongo.Database) repository.PerformanceRepository {
	return &mongoPerformanceRepository{
		collection: db.Collection(performanceCollectionName),
	}
}

// Create inserts a new daily performance record.
func (r *mongoPerformanceRepository) Create(ctx context.Context, record *domain.DailyPerformance) (string, error) {
	if record.TraineeID == "" {
		return "", errors.New("trainee ID is required")
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrAlreadyExists
		}
		return "", err
	}
	return record.ID, nil
}

// GetByTraineeAndDate retrieves the record for a single (trainee, date) pair.
func (r *mongoPerformanceRepository) GetByTraineeAndDate(ctx context.Context, traineeID string, date time.Time) (*domain.DailyPerformance, error) {
	var record domain.DailyPerformance
	filter := bson.M{"traineeId": traineeID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetByTraineeAndDates retrieves all records whose date is in the given set.
func (r *mongoPerformanceRepository) GetByTraineeAndDates(ctx context.Context, traineeID string, dates []time.Time) ([]domain.DailyPerformance, error) {
	var records []domain.DailyPerformance
	filter := bson.M{
		"traineeId": traineeID,
		"date":      bson.M{"$in": dates},
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Update rewrites the counts and derived progress value of an existing record.
func (r *mongoPerformanceRepository) Update(ctx context.Context, record *domain.DailyPerformance) error {
	if record.ID == "" {
		return errors.New("record ID is required for update")
	}

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"completedExercises": record.CompletedExercises,
			"completedMeals":     record.CompletedMeals,
			"progressValue":      record.ProgressValue,
			"updatedAt":          time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePerformanceIndexes creates necessary indexes for the performance collection.
func EnsurePerformanceIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One record per trainee per day.
			Keys:    bson.D{{Key: "traineeId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
