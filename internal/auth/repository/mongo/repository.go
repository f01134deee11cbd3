package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Gauravsingh640/Quickart/internal/auth/domain"
	autherror "github.com/Gauravsingh640/Quickart/internal/errors"
	"github.com/Gauravsingh640/Quickart/pkg/constant"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(constant.UserCollection)}
}

// GetByEmail returns (nil, nil) when no user matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// Create inserts a new user. A duplicate key on the unique email index is
// reported as the same conflict the service-level existence check raises, so
// racing registrations collapse into one outcome.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return autherror.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"verified": true, "updated_at": time.Now()}}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set verified: %w", err)
	}

	return nil
}

func (r *UserRepository) SetLoggedIn(ctx context.Context, id string, loggedIn bool) error {
	update := bson.M{"$set": bson.M{"logged_in": loggedIn, "updated_at": time.Now()}}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set logged_in: %w", err)
	}

	return nil
}
