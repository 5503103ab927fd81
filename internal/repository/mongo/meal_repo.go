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

const mealCollectionName = "meals"

// mongoMealRepository implements repository.MealRepository
type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a new Meal repository backed by MongoDB.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(mealCollectionName),
	}
}

// Create inserts a new meal into the menu.
func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	if meal.Name == "" {
		return "", errors.New("meal name is required")
	}

	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	if meal.Status == "" {
		meal.Status = domain.CatalogActive
	}
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return "", err
	}
	return meal.ID, nil
}

// GetByID retrieves a meal by its ID.
func (r *mongoMealRepository) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// GetActive retrieves all active meals, newest first.
func (r *mongoMealRepository) GetActive(ctx context.Context) ([]domain.Meal, error) {
	var meals []domain.Meal
	filter := bson.M{"status": domain.CatalogActive}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Update modifies an existing meal and bumps its UpdatedAt timestamp.
func (r *mongoMealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	if meal.ID == "" {
		return errors.New("meal ID is required for update")
	}
	if meal.Name == "" {
		return errors.New("meal name cannot be empty")
	}

	filter := bson.M{"_id": meal.ID}
	update := bson.M{
		"$set": bson.M{
			"name":        meal.Name,
			"calories":    meal.Calories,
			"timing":      meal.Timing,
			"description": meal.Description,
			"status":      meal.Status,
			"updatedAt":   time.Now().UTC(),
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

// Delete removes a meal from the menu.
func (r *mongoMealRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
