package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Gauravsingh640/Quickart/internal/auth/domain UserRepository,SessionRepository,Mailer

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, id string) error
	SetLoggedIn(ctx context.Context, id string, loggedIn bool) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// Mailer dispatches a verification link. Implementations must not block the
// caller on transport failures; delivery errors are logged, never returned.
type Mailer interface {
	SendVerification(email, token string)
}
