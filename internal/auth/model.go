package auth

import "time"

// Admin is the single privileged identity. RefreshToken holds the last issued
// refresh credential; rotating it revokes every outstanding session.
type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login accepts the same shape as registration.
type LoginRequest = RegisterRequest
