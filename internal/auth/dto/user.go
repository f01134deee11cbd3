package dto

import (
	"time"

	"github.com/Gauravsingh640/Quickart/internal/auth/domain"
)

// UserOutput is the outward-facing projection of a user. The password hash
// stays out of every response on purpose.
type UserOutput struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	LoggedIn  bool      `json:"loggedIn"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Verified:  u.Verified,
		LoggedIn:  u.LoggedIn,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
