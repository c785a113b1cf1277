package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitness-ai/internal/domain"
	"alcyxob/fitness-ai/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recommendationCollectionName = "recommendations"

// mongoRecommendationRepository implements repository.RecommendationRepository
type mongoRecommendationRepository struct {
	collection *mongo.Collection
}

// NewMongoRecommendationRepository creates a new Recommendation repository.
func NewMongoRecommendationRepository(db *mongo.Database) repository.RecommendationRepository {
	return &mongoRecommendationRepository{
		collection: db.Collection(recommendationCollectionName),
	}
}

// Create inserts a new recommendation. The pipeline owns CreatedAt stamping,
// so it is only filled in here when the synthesizer left it zero.
func (r *mongoRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) (primitive.ObjectID, error) {
	if rec.ActivityID == "" || rec.UserID == "" {
		return primitive.NilObjectID, errors.New("recommendation requires activityId and userId")
	}
	rec.ID = primitive.NewObjectID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted recommendation ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves all recommendations for a user, newest first.
func (r *mongoRecommendationRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recommendations := []domain.Recommendation{}
	if err = cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Empty slice, not nil, when the user has no recommendations yet.
	return recommendations, nil
}

// GetByActivityID retrieves the recommendation generated for one activity.
func (r *mongoRecommendationRepository) GetByActivityID(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	filter := bson.M{"activityId": activityID}
	err := r.collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// EnsureRecommendationIndexes creates necessary indexes. Call during startup.
func EnsureRecommendationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			// One recommendation per activity.
			Keys:    bson.D{{Key: "activityId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
