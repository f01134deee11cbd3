package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gauravsingh640/Quickart/internal/auth/domain"
	"github.com/Gauravsingh640/Quickart/pkg/constant"
)

type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(constant.SessionCollection)}
}

// Create upserts on user_id rather than inserting blindly: combined with the
// unique index, two racing logins end up with exactly one session instead of
// a duplicate-key failure.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	filter := bson.M{"user_id": session.UserID}
	update := bson.M{
		"$set":         bson.M{"created_at": session.CreatedAt},
		"$setOnInsert": bson.M{"_id": session.ID},
	}

	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}
