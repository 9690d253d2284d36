package auth

import (
	"strings"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrMissingRegisterFields = &pkg.ValidationError{Message: "Please provide all required fields"}
	ErrMissingLoginFields    = &pkg.ValidationError{Message: "Email and password required"}
	ErrMissingResetFields    = &pkg.ValidationError{Message: "Email and new password are required."}
)

var registerMessages = map[string]string{
	"username":  "Invalid username",
	"email":     "Invalid email format",
	"password":  "Password must be at least 6 characters",
	"phone":     "Invalid phone format",
	"age":       "Invalid age",
	"height_cm": "Invalid height",
	"weight_kg": "Invalid weight",
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = normalizeEmail(r.Email)
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return ErrMissingRegisterFields
	}
	return pkg.ValidateStruct(r, registerMessages)
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ErrMissingLoginFields
	}
	return nil
}

func (r *ResetPasswordRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *ResetPasswordRequest) Validate() error {
	if r.Email == "" || r.NewPassword == "" {
		return ErrMissingResetFields
	}
	return pkg.ValidateStruct(r, map[string]string{
		"newPassword": "Password must be at least 6 characters",
	})
}
