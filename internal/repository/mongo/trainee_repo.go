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

const traineeCollectionName = "trainee_profiles"

// mongoTraineeRepository implements repository.TraineeRepository
type mongoTraineeRepository struct {
	collection *mongo.Collection
}

// NewMongoTraineeRepository creates a new Trainee repository backed by MongoDB.
func NewMongoTraineeRepository(db *mongo.Database) repository.TraineeRepository {
	return &mongoTraineeRepository{
		collection: db.Collection(traineeCollectionName),
	}
}

// Create inserts a new trainee profile.
func (r *mongoTraineeRepository) Create(ctx context.Context, trainee *domain.Trainee) (string, error) {
	if trainee.Name == "" || trainee.Email == "" {
		return "", errors.New("trainee name and email are required")
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

	_, err := r.collection.InsertOne(ctx, trainee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrAlreadyExists
		}
		return "", err
	}
	return trainee.ID, nil
}

// GetByID retrieves a trainee profile by its ID.
func (r *mongoTraineeRepository) GetByID(ctx context.Context, id string) (*domain.Trainee, error) {
	var trainee domain.Trainee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trainee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainee, nil
}

// GetAll retrieves all trainee profiles, newest first.
func (r *mongoTraineeRepository) GetAll(ctx context.Context) ([]domain.Trainee, error) {
	var trainees []domain.Trainee

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &trainees); err != nil {
		return nil, err
	}
	return trainees, nil
}

// Update rewrites the mutable profile fields. Initial measurements stay as
// registered, and current weight changes only through UpdateCurrentWeight.
// Moving the profile onto an email the unique index already holds returns
// ErrAlreadyExists.
func (r *mongoTraineeRepository) Update(ctx context.Context, trainee *domain.Trainee) error {
	if trainee.ID == "" {
		return errors.New("trainee ID is required for update")
	}

	filter := bson.M{"_id": trainee.ID}
	update := bson.M{
		"$set": bson.M{
			"name":          trainee.Name,
			"email":         trainee.Email,
			"phone":         trainee.Phone,
			"targetWeight":  trainee.TargetWeight,
			"height":        trainee.Height,
			"fatPercentage": trainee.FatPercentage,
			"muscleMass":    trainee.MuscleMass,
			"goals":         trainee.Goals,
			"status":        trainee.Status,
			"updatedAt":     time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateCurrentWeight refreshes only the profile's current weight.
func (r *mongoTraineeRepository) UpdateCurrentWeight(ctx context.Context, id string, weight float64) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"currentWeight": weight,
			"updatedAt":     time.Now().UTC(),
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

// EnsureTraineeIndexes creates necessary indexes for the trainee collection.
func EnsureTraineeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
