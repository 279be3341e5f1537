package dto

import "github.com/google/uuid"

// UserResponse is the public projection of a user
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullname"`
}
