package repository

import (
	"context"

	"alcyxob/fitness-ai/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// RecommendationRepository defines the interface for persisting and querying
// generated recommendations.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Recommendation, error)
	GetByActivityID(ctx context.Context, activityID string) (*domain.Recommendation, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
