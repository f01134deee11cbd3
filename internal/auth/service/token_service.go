package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Gauravsingh640/Quickart/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/Gauravsingh640/Quickart/internal/errors"
)

type TokenGenerator interface {
	GenerateVerificationToken(userID string) (string, error)
	GenerateLoginTokens(userID string) (access string, refresh string, err error)
	Verify(tokenString string) (string, error)
}

// TokenService signs and verifies the three token flavours with a single
// HS256 secret; they differ only in lifetime.
type TokenService struct {
	Secret             string
	VerificationExpiry time.Duration
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, verificationMinutes, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		Secret:             secret,
		VerificationExpiry: time.Duration(verificationMinutes) * time.Minute,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) sign(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

func (ts *TokenService) GenerateVerificationToken(userID string) (string, error) {
	return ts.sign(userID, ts.VerificationExpiry)
}

func (ts *TokenService) GenerateLoginTokens(userID string) (string, string, error) {
	accessToken, err := ts.sign(userID, ts.AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.sign(userID, ts.RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Verify parses and validates a token and returns the embedded user ID. Any
// signature or expiry failure comes back as the classified auth error.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil || !token.Valid {
		return "", autherror.ErrInvalidToken
	}

	return claims.UserID, nil
}
