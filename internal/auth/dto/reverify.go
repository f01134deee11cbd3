package dto

type ReverifyInput struct {
	Email string `json:"email"`
}
