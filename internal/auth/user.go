package auth

import "time"

type User struct {
	ID           int
	Email        string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Phone        *string
	Age          *int
	Gender       *string
	CreatedAt    time.Time
}

type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Phone        *string
	Age          *int
	Gender       *string
	HeightCm     *float64
	WeightKg     *float64
}

type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email,max=255"`
	Password  string   `json:"password" validate:"required,min=6"`
	FirstName *string  `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string  `json:"lastName" validate:"omitempty,max=100"`
	Phone     *string  `json:"phone" validate:"omitempty,phone"`
	Gender    *string  `json:"gender" validate:"omitempty,max=20"`
	Age       *int     `json:"age" validate:"omitempty,min=10,max=120"`
	HeightCm  *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	WeightKg  *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Message   string `json:"message"`
	FirstName string `json:"firstName"`
	Username  string `json:"username"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword" validate:"min=6"`
}

// RequestMeta is what the transport layer knows about the caller, kept for the activity log.
type RequestMeta struct {
	IPAddress string
	// TokenFingerprint is set for requests made with a bearer token.
	TokenFingerprint string
}
