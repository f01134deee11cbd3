package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Gauravsingh640/Quickart/internal/auth/domain"
	repo "github.com/Gauravsingh640/Quickart/internal/auth/repository/mongo"
	autherror "github.com/Gauravsingh640/Quickart/internal/errors"
)

func userDoc(id, email string, verified bool) bson.D {
	now := time.Now().Truncate(time.Millisecond)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "first_name", Value: "A"},
		{Key: "last_name", Value: "B"},
		{Key: "email", Value: email},
		{Key: "password_hash", Value: "hash"},
		{Key: "verified", Value: verified},
		{Key: "logged_in", Value: false},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "Quickart.users",
			mtest.FirstBatch, userDoc("user-1", "a@x.com", true)))

		user, err := r.GetByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, "user-1", user.ID)
		assert.Equal(mt, "a@x.com", user.Email)
		assert.True(mt, user.Verified)
	})

	mt.Run("not found returns nil, nil", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Quickart.users", mtest.FirstBatch))

		user, err := r.GetByEmail(context.Background(), "nobody@x.com")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "Quickart.users",
			mtest.FirstBatch, userDoc("user-1", "a@x.com", false)))

		user, err := r.GetByID(context.Background(), "user-1")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, "user-1", user.ID)
	})

	mt.Run("not found returns nil, nil", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "Quickart.users", mtest.FirstBatch))

		user, err := r.GetByID(context.Background(), "ghost")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	newUser := func() *domain.User {
		now := time.Now()
		return &domain.User{
			ID:           "user-1",
			FirstName:    "A",
			LastName:     "B",
			Email:        "a@x.com",
			PasswordHash: "hash",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	mt.Run("success", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := r.Create(context.Background(), newUser())
		assert.NoError(mt, err)
	})

	mt.Run("duplicate key maps to conflict", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := r.Create(context.Background(), newUser())
		assert.Equal(mt, autherror.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_Flags(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("set verified", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(mt, r.SetVerified(context.Background(), "user-1"))
	})

	mt.Run("set logged in", func(mt *mtest.T) {
		r := repo.NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(mt, r.SetLoggedIn(context.Background(), "user-1", true))
	})
}

func TestSessionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create upserts", func(mt *mtest.T) {
		r := repo.NewSessionRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{
				{Key: "index", Value: 0}, {Key: "_id", Value: "session-1"},
			}}}))

		err := r.Create(context.Background(), &domain.Session{
			ID:        "session-1",
			UserID:    "user-1",
			CreatedAt: time.Now(),
		})
		assert.NoError(mt, err)
	})

	mt.Run("delete by user id", func(mt *mtest.T) {
		r := repo.NewSessionRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		assert.NoError(mt, r.DeleteByUserID(context.Background(), "user-1"))
	})
}
