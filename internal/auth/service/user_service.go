package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gauravsingh640/Quickart/internal/auth/domain"
	"github.com/Gauravsingh640/Quickart/internal/auth/dto"
	autherror "github.com/Gauravsingh640/Quickart/internal/errors"
)

type UserService struct {
	userRepo     domain.UserRepository
	sessionRepo  domain.SessionRepository
	tokenService TokenGenerator
	mailer       domain.Mailer
}

func NewUserService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository,
	tokenService TokenGenerator, mailer domain.Mailer) *UserService {
	return &UserService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, autherror.ErrAllFieldsRequired
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Verified:     false,
		LoggedIn:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique email index is the real guard against concurrent
	// registrations; the repository reports a duplicate key as the same
	// conflict the existence check above would have raised.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenService.GenerateVerificationToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: delivery failures are logged by the mailer and never
	// affect the registration response.
	s.mailer.SendVerification(user.Email, token)

	output := dto.NewUserOutput(user)

	return &output, nil
}

// VerifyEmail consumes a verification token. Verifying an already-verified
// user succeeds idempotently.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (string, error) {
	userID, err := s.tokenService.Verify(token)
	if err != nil {
		return "", autherror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	if user.Verified {
		return "Email already verified", nil
	}

	if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
		return "", fmt.Errorf("failed to mark user verified: %w", err)
	}

	return "Email verified successfully", nil
}

func (s *UserService) ResendVerification(ctx context.Context, input dto.ReverifyInput) error {
	if input.Email == "" {
		return autherror.ErrEmailRequired
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if user.Verified {
		return autherror.ErrAlreadyVerified
	}

	token, err := s.tokenService.GenerateVerificationToken(user.ID)
	if err != nil {
		return err
	}

	s.mailer.SendVerification(user.Email, token)

	return nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrAllFieldsRequired
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserDoesNotExist
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidPassword
	}

	if !user.Verified {
		return nil, autherror.ErrEmailNotVerified
	}

	accessToken, refreshToken, err := s.tokenService.GenerateLoginTokens(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetLoggedIn(ctx, user.ID, true); err != nil {
		return nil, fmt.Errorf("failed to mark user logged in: %w", err)
	}

	// A new login replaces any prior session for the user.
	if err := s.sessionRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to discard prior sessions: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	user.LoggedIn = true

	return &dto.LoginOutput{
		User:         dto.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout destroys every session for the user and clears the logged-in flag.
// Calling it for a user with no sessions is not an error.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	if err := s.userRepo.SetLoggedIn(ctx, userID, false); err != nil {
		return fmt.Errorf("failed to mark user logged out: %w", err)
	}

	return nil
}
