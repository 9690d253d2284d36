package workouts

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

type Workout struct {
	ID          int       `json:"id"`
	WorkoutType string    `json:"workoutType"`
	Duration    int       `json:"duration"`
	Calories    int       `json:"calories"`
	WorkoutDate string    `json:"workout_date"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewWorkout struct {
	WorkoutType string
	Duration    int
	Calories    int
	WorkoutDate string
	Notes       *string
}

// Update holds the fields to change; nil fields keep their stored value.
type Update struct {
	WorkoutType *string
	Duration    *int
	Calories    *int
	WorkoutDate *string
	Notes       *string
}

func (u Update) Empty() bool {
	return u.WorkoutType == nil &&
		u.Duration == nil &&
		u.Calories == nil &&
		u.WorkoutDate == nil &&
		u.Notes == nil
}

var (
	ErrMissingFields = &pkg.ValidationError{Message: "Please fill all required fields"}
	ErrNoFields      = &pkg.ValidationError{Message: "No fields provided to update"}
)

var fieldMessages = map[string]string{
	"workoutType":  "Invalid workout type",
	"duration":     "Duration must be between 1 and 1440 minutes",
	"calories":     "Calories must be between 0 and 100000",
	"workout_date": "Invalid workout date, expected YYYY-MM-DD",
	"notes":        "Notes too long",
}

type AddRequest struct {
	WorkoutType string  `json:"workoutType" validate:"required,max=100"`
	Duration    *int    `json:"duration" validate:"required,gt=0,lte=1440"`
	Calories    *int    `json:"calories" validate:"required,gte=0,lte=100000"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
	WorkoutDate string  `json:"workout_date" validate:"required,isodate"`
}

func (r *AddRequest) Normalize() {
	r.WorkoutType = strings.TrimSpace(r.WorkoutType)
}

func (r *AddRequest) Validate() error {
	if r.WorkoutType == "" || r.Duration == nil || r.Calories == nil || r.WorkoutDate == "" {
		return ErrMissingFields
	}
	return pkg.ValidateStruct(r, fieldMessages)
}

func (r *AddRequest) ToNewWorkout() NewWorkout {
	return NewWorkout{
		WorkoutType: r.WorkoutType,
		Duration:    *r.Duration,
		Calories:    *r.Calories,
		WorkoutDate: r.WorkoutDate,
		Notes:       r.Notes,
	}
}

type UpdateRequest struct {
	WorkoutType *string `json:"workoutType" validate:"omitempty,min=1,max=100"`
	Duration    *int    `json:"duration" validate:"omitempty,gt=0,lte=1440"`
	Calories    *int    `json:"calories" validate:"omitempty,gte=0,lte=100000"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
	WorkoutDate *string `json:"workout_date" validate:"omitempty,isodate"`
}

func (r *UpdateRequest) Normalize() {
	if r.WorkoutType != nil {
		workoutType := strings.TrimSpace(*r.WorkoutType)
		r.WorkoutType = &workoutType
	}
}

func (r *UpdateRequest) Validate() error {
	if r.ToUpdate().Empty() {
		return ErrNoFields
	}
	return pkg.ValidateStruct(r, fieldMessages)
}

func (r *UpdateRequest) ToUpdate() Update {
	return Update{
		WorkoutType: r.WorkoutType,
		Duration:    r.Duration,
		Calories:    r.Calories,
		WorkoutDate: r.WorkoutDate,
		Notes:       r.Notes,
	}
}
