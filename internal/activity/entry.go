package activity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type Type string

const (
	TypeRegistration   Type = "Registration"
	TypeLogin          Type = "Login"
	TypeLogout         Type = "Logout"
	TypePasswordReset  Type = "Password Reset"
	TypeProfileUpdated Type = "Profile Updated"
	TypeWorkoutAdded   Type = "Workout Added"
	TypeWorkoutUpdated Type = "Workout Updated"
	TypeWorkoutDeleted Type = "Workout Deleted"
	TypeGoalAdded      Type = "Goal Added"
	TypeGoalUpdated    Type = "Goal Updated"
	TypeGoalDeleted    Type = "Goal Deleted"
)

// TokenInfo describes the credential issued with an activity. The raw token is never stored.
type TokenInfo struct {
	Fingerprint string
	Type        string
	ExpiresAt   time.Time
}

type Entry struct {
	UserID      int
	Type        Type
	Description string
	Token       *TokenInfo
	IPAddress   string
	Timestamp   time.Time
}

// Fingerprint returns the hex sha256 of a token.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
