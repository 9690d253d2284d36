package goals

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

type Goal struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	TargetDate  string    `json:"target_date"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewGoal struct {
	Description string
	TargetDate  string
	Status      Status
}

// Update holds the fields to change; nil fields keep their stored value.
type Update struct {
	Description *string
	TargetDate  *string
	Status      *Status
}

func (u Update) Empty() bool {
	return u.Description == nil && u.TargetDate == nil && u.Status == nil
}

var (
	ErrMissingAddFields    = &pkg.ValidationError{Message: "Description and target date are required"}
	ErrMissingUpdateFields = &pkg.ValidationError{Message: "Missing required fields"}
)

var fieldMessages = map[string]string{
	"description": "Description must be 1 to 255 characters",
	"target_date": "Invalid target date, expected YYYY-MM-DD",
	"status":      "Invalid status, expected one of: active, upcoming, completed",
}

type AddRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	TargetDate  string  `json:"target_date" validate:"required,isodate"`
	Status      *Status `json:"status" validate:"omitempty,oneof=active upcoming completed"`
}

func (r *AddRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

func (r *AddRequest) Validate() error {
	if r.Description == "" || r.TargetDate == "" {
		return ErrMissingAddFields
	}
	return pkg.ValidateStruct(r, fieldMessages)
}

func (r *AddRequest) ToNewGoal() NewGoal {
	status := StatusActive
	if r.Status != nil {
		status = *r.Status
	}
	return NewGoal{
		Description: r.Description,
		TargetDate:  r.TargetDate,
		Status:      status,
	}
}

type UpdateRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=255"`
	TargetDate  *string `json:"target_date" validate:"omitempty,isodate"`
	Status      *Status `json:"status" validate:"omitempty,oneof=active upcoming completed"`
}

func (r *UpdateRequest) Normalize() {
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		r.Description = &description
	}
}

func (r *UpdateRequest) Validate() error {
	if r.ToUpdate().Empty() {
		return ErrMissingUpdateFields
	}
	return pkg.ValidateStruct(r, fieldMessages)
}

func (r *UpdateRequest) ToUpdate() Update {
	return Update{
		Description: r.Description,
		TargetDate:  r.TargetDate,
		Status:      r.Status,
	}
}
